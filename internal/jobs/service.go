package jobs

import (
	"context"
	"strings"

	"jobportal-backend/internal/shared/cache"
	"jobportal-backend/internal/shared/telemetry"
)

// Service contains business logic for job search.
type Service struct {
	Agg   *Aggregator
	Repo  Repo
	Cache *cache.Cache[[]Job]
}

// Search runs an aggregated provider search with a TTL cache in front.
// Fresh results are stored in the repo so they remain listable after the
// cache entry expires.
func (s *Service) Search(ctx context.Context, query, location string) []Job {
	key := searchCacheKey(query, location)
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(key); ok {
			return cached
		}
	}

	results := s.Agg.Search(ctx, query, location)

	if s.Cache != nil {
		s.Cache.Set(key, results)
	}
	if s.Repo != nil {
		for _, job := range results {
			if err := s.Repo.Upsert(ctx, job); err != nil {
				telemetry.Error("jobs.upsert_failed", map[string]any{
					"jobId": job.ID,
					"error": err.Error(),
				})
				break
			}
		}
	}
	return results
}

// Get returns a stored posting.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	if jobID == "" {
		return Job{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, jobID)
}

// List returns stored postings matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Job, error) {
	return s.Repo.List(ctx, filter)
}

func searchCacheKey(query, location string) string {
	return strings.ToLower(strings.TrimSpace(query)) + "|" + strings.ToLower(strings.TrimSpace(location))
}
