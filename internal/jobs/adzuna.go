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

const adzunaResultsPerPage = 20

// AdzunaProvider queries the Adzuna job board API.
type AdzunaProvider struct {
	BaseURL    string
	AppID      string
	AppKey     string
	Country    string
	HTTPClient *http.Client
}

// NewAdzunaProvider constructs an Adzuna provider. The country code selects
// the Adzuna market, e.g. "gb" or "us".
func NewAdzunaProvider(baseURL, appID, appKey, country string) *AdzunaProvider {
	return &AdzunaProvider{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AppID:      appID,
		AppKey:     appKey,
		Country:    strings.ToLower(country),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *AdzunaProvider) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		Description string  `json:"description"`
		RedirectURL string  `json:"redirect_url"`
		SalaryMin   float64 `json:"salary_min"`
		SalaryMax   float64 `json:"salary_max"`
		Created     string  `json:"created"`
	} `json:"results"`
}

// Search queries Adzuna for postings matching the query and location.
func (p *AdzunaProvider) Search(ctx context.Context, query, location string) ([]Job, error) {
	if p.AppID == "" || p.AppKey == "" {
		return []Job{}, nil
	}

	params := url.Values{}
	params.Set("app_id", p.AppID)
	params.Set("app_key", p.AppKey)
	params.Set("what", query)
	params.Set("results_per_page", fmt.Sprint(adzunaResultsPerPage))
	if location != "" {
		params.Set("where", location)
	}

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", p.BaseURL, p.Country, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("adzuna status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("adzuna response parse: %w", err)
	}

	out := make([]Job, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		job := Job{
			ID:          "adzuna-" + r.ID,
			Source:      p.Name(),
			SourceID:    r.ID,
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: cleanDescription(r.Description),
			URL:         r.RedirectURL,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
		}
		if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
			job.PostedAt = &t
		}
		out = append(out, job)
	}
	return out, nil
}

var _ Provider = (*AdzunaProvider)(nil)
