package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/shared/server/middleware"
)

func setupJobsRouter(t *testing.T, provider Provider) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	svc := &Service{Agg: NewAggregator(provider), Repo: repo}
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(middleware.Auth("dev"))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, repo
}

func TestSearchRequiresQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, _ := setupJobsRouter(t, &stubProvider{name: "stub"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSearchReturnsAggregated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	provider := &stubProvider{name: "stub", jobs: []Job{
		{ID: "stub-1", Title: "Go Developer", Company: "Acme"},
		{ID: "stub-2", Title: "Platform Engineer", Company: "Widgets"},
	}}
	router, _ := setupJobsRouter(t, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search?q=go&location=london", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Jobs  []Job `json:"jobs"`
			Count int   `json:"count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success true")
	}
	if envelope.Data.Count != 2 || len(envelope.Data.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %+v", envelope.Data)
	}
}

func TestListFiltersStoredJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, repo := setupJobsRouter(t, &stubProvider{name: "stub"})

	seed := []Job{
		{ID: "j-1", Title: "Go Developer", Company: "Acme", Location: "London", CreatedAt: time.Now().UTC()},
		{ID: "j-2", Title: "Data Analyst", Company: "Widgets", Location: "Leeds", CreatedAt: time.Now().UTC().Add(time.Minute)},
	}
	for _, job := range seed {
		if err := repo.Upsert(context.Background(), job); err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?q=go", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Jobs []Job `json:"jobs"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Jobs) != 1 || envelope.Data.Jobs[0].ID != "j-1" {
		t.Fatalf("expected only the Go posting, got %+v", envelope.Data.Jobs)
	}
}

func TestGetJobNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, _ := setupJobsRouter(t, &stubProvider{name: "stub"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/nope", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
