package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// JSearchProvider queries the JSearch API on RapidAPI.
type JSearchProvider struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewJSearchProvider constructs a JSearch provider.
func NewJSearchProvider(baseURL, apiKey string) *JSearchProvider {
	return &JSearchProvider{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *JSearchProvider) Name() string { return "jsearch" }

type jsearchResponse struct {
	Data []struct {
		JobID          string `json:"job_id"`
		JobTitle       string `json:"job_title"`
		EmployerName   string `json:"employer_name"`
		JobCity        string `json:"job_city"`
		JobState       string `json:"job_state"`
		JobDescription string `json:"job_description"`
		JobApplyLink   string `json:"job_apply_link"`
		JobIsRemote    bool   `json:"job_is_remote"`
		JobPostedAtUTC string `json:"job_posted_at_datetime_utc"`
	} `json:"data"`
}

// Search queries JSearch for postings matching the query and location.
func (p *JSearchProvider) Search(ctx context.Context, query, location string) ([]Job, error) {
	if p.APIKey == "" {
		return []Job{}, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	if location != "" {
		params.Set("location", location)
	}

	endpoint := p.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", p.APIKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost(p.BaseURL))

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("jsearch status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("jsearch response parse: %w", err)
	}

	out := make([]Job, 0, len(parsed.Data))
	for _, r := range parsed.Data {
		job := Job{
			ID:          "jsearch-" + r.JobID,
			Source:      p.Name(),
			SourceID:    r.JobID,
			Title:       r.JobTitle,
			Company:     r.EmployerName,
			Location:    joinLocation(r.JobCity, r.JobState),
			Description: cleanDescription(r.JobDescription),
			URL:         r.JobApplyLink,
			Remote:      r.JobIsRemote,
		}
		if t, err := time.Parse(time.RFC3339, r.JobPostedAtUTC); err == nil {
			job.PostedAt = &t
		}
		out = append(out, job)
	}
	return out, nil
}

func rapidAPIHost(baseURL string) string {
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return baseURL
}

func joinLocation(city, state string) string {
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	default:
		return state
	}
}

var _ Provider = (*JSearchProvider)(nil)
