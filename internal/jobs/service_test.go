package jobs

import (
	"context"
	"testing"
	"time"

	"jobportal-backend/internal/shared/cache"
)

func TestServiceSearchCachesByQuery(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	provider := &stubProvider{name: "stub", jobs: []Job{{ID: "stub-1", Title: "Go Developer"}}}
	svc := &Service{
		Agg:   NewAggregator(provider),
		Repo:  NewMemoryRepo(),
		Cache: cache.New[[]Job](5*time.Minute, clock),
	}

	first := svc.Search(context.Background(), "golang", "london")
	second := svc.Search(context.Background(), "golang", "london")
	if provider.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", provider.calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected cached results returned")
	}

	// Different query misses the cache.
	svc.Search(context.Background(), "python", "london")
	if provider.calls != 2 {
		t.Fatalf("expected cache miss on new query, got %d calls", provider.calls)
	}

	// Expiry forces a refetch.
	now = now.Add(6 * time.Minute)
	svc.Search(context.Background(), "golang", "london")
	if provider.calls != 3 {
		t.Fatalf("expected refetch after TTL, got %d calls", provider.calls)
	}
}

func TestServiceSearchStoresResults(t *testing.T) {
	provider := &stubProvider{name: "stub", jobs: []Job{{ID: "stub-1", Title: "Go Developer", Company: "Acme"}}}
	repo := NewMemoryRepo()
	svc := &Service{Agg: NewAggregator(provider), Repo: repo}

	svc.Search(context.Background(), "golang", "")

	stored, err := repo.GetByID(context.Background(), "stub-1")
	if err != nil {
		t.Fatalf("expected search result persisted: %v", err)
	}
	if stored.Company != "Acme" {
		t.Fatalf("unexpected stored job: %+v", stored)
	}
}
