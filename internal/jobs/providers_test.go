package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAdzunaSearchNormalizes(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("what")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{
			"id":"123",
			"title":"Backend Engineer",
			"company":{"display_name":"Acme"},
			"location":{"display_name":"London"},
			"description":"<p>Build <b>APIs</b> in Go</p>",
			"redirect_url":"https://example.com/123",
			"salary_min":50000,
			"salary_max":70000,
			"created":"2025-05-01T00:00:00Z"
		}]}`))
	}))
	t.Cleanup(server.Close)

	p := NewAdzunaProvider(server.URL, "app-id", "app-key", "gb")
	jobs, err := p.Search(context.Background(), "golang", "London")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotPath != "/gb/search/1" {
		t.Fatalf("expected country path, got %q", gotPath)
	}
	if gotQuery != "golang" {
		t.Fatalf("expected what=golang, got %q", gotQuery)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.ID != "adzuna-123" || job.Source != "adzuna" {
		t.Fatalf("unexpected identity: %+v", job)
	}
	if job.Company != "Acme" || job.Location != "London" {
		t.Fatalf("unexpected company/location: %+v", job)
	}
	if job.Description != "Build APIs in Go" {
		t.Fatalf("expected HTML stripped, got %q", job.Description)
	}
	if job.PostedAt == nil {
		t.Fatalf("expected postedAt parsed")
	}
}

func TestAdzunaSkipsWithoutCredentials(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	p := NewAdzunaProvider(server.URL, "", "", "gb")
	jobs, err := p.Search(context.Background(), "golang", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if called {
		t.Fatalf("expected no request without credentials")
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty result, got %d", len(jobs))
	}
}

func TestAdzunaUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	p := NewAdzunaProvider(server.URL, "app-id", "app-key", "gb")
	_, err := p.Search(context.Background(), "golang", "")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestReedSearchNormalizes(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{
			"jobId":42,
			"jobTitle":"Platform Engineer",
			"employerName":"Widgets Ltd",
			"locationName":"Manchester",
			"jobDescription":"Kubernetes &amp; Go",
			"jobUrl":"https://example.com/42",
			"minimumSalary":45000,
			"maximumSalary":60000,
			"date":"15/04/2025"
		}]}`))
	}))
	t.Cleanup(server.Close)

	p := NewReedProvider(server.URL, "reed-key")
	jobs, err := p.Search(context.Background(), "golang", "Manchester")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.HasPrefix(gotAuth, "Basic ") {
		t.Fatalf("expected basic auth, got %q", gotAuth)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.ID != "reed-42" || job.SourceID != "42" {
		t.Fatalf("unexpected identity: %+v", job)
	}
	if job.PostedAt == nil || job.PostedAt.Month() != 4 {
		t.Fatalf("expected date parsed as April, got %v", job.PostedAt)
	}
}

func TestJSearchNormalizes(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{
			"job_id":"abc",
			"job_title":"SRE",
			"employer_name":"Example Inc",
			"job_city":"Austin",
			"job_state":"TX",
			"job_description":"On-call rotation",
			"job_apply_link":"https://example.com/abc",
			"job_is_remote":true,
			"job_posted_at_datetime_utc":"2025-03-01T12:00:00Z"
		}]}`))
	}))
	t.Cleanup(server.Close)

	p := NewJSearchProvider(server.URL, "rapid-key")
	jobs, err := p.Search(context.Background(), "sre", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotKey != "rapid-key" {
		t.Fatalf("expected RapidAPI key header, got %q", gotKey)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.Location != "Austin, TX" {
		t.Fatalf("expected joined location, got %q", job.Location)
	}
	if !job.Remote {
		t.Fatalf("expected remote flag")
	}
}

func TestCleanDescription(t *testing.T) {
	cases := map[string]string{
		"plain text":                          "plain text",
		"<p>Hello <strong>world</strong></p>": "Hello world",
		"  spaced \n out  ":                   "spaced out",
	}
	for in, want := range cases {
		if got := cleanDescription(in); got != want {
			t.Fatalf("cleanDescription(%q) = %q, want %q", in, got, want)
		}
	}
}
