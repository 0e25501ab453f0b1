package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const reedResultsToTake = 50

// ReedProvider queries the Reed job board API. Reed authenticates with
// HTTP basic auth using the API key as username and an empty password.
type ReedProvider struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewReedProvider constructs a Reed provider.
func NewReedProvider(baseURL, apiKey string) *ReedProvider {
	return &ReedProvider{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *ReedProvider) Name() string { return "reed" }

type reedResponse struct {
	Results []struct {
		JobID          int64   `json:"jobId"`
		JobTitle       string  `json:"jobTitle"`
		EmployerName   string  `json:"employerName"`
		LocationName   string  `json:"locationName"`
		JobDescription string  `json:"jobDescription"`
		JobURL         string  `json:"jobUrl"`
		MinimumSalary  float64 `json:"minimumSalary"`
		MaximumSalary  float64 `json:"maximumSalary"`
		Date           string  `json:"date"`
	} `json:"results"`
}

// Search queries Reed for postings matching the query and location.
func (p *ReedProvider) Search(ctx context.Context, query, location string) ([]Job, error) {
	if p.APIKey == "" {
		return []Job{}, nil
	}

	params := url.Values{}
	params.Set("keywords", query)
	params.Set("resultsToTake", strconv.Itoa(reedResultsToTake))
	if location != "" {
		params.Set("locationName", location)
	}

	endpoint := p.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(p.APIKey, "")

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("reed status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed reedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("reed response parse: %w", err)
	}

	out := make([]Job, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		sourceID := strconv.FormatInt(r.JobID, 10)
		job := Job{
			ID:          "reed-" + sourceID,
			Source:      p.Name(),
			SourceID:    sourceID,
			Title:       r.JobTitle,
			Company:     r.EmployerName,
			Location:    r.LocationName,
			Description: cleanDescription(r.JobDescription),
			URL:         r.JobURL,
			SalaryMin:   r.MinimumSalary,
			SalaryMax:   r.MaximumSalary,
		}
		// Reed dates look like 02/01/2006.
		if t, err := time.Parse("02/01/2006", r.Date); err == nil {
			job.PostedAt = &t
		}
		out = append(out, job)
	}
	return out, nil
}

var _ Provider = (*ReedProvider)(nil)
