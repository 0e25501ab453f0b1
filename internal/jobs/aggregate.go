package jobs

import (
	"context"
	"sync"

	"jobportal-backend/internal/shared/telemetry"
)

// Aggregator fans a search out to every configured provider and collects
// whatever came back. A failing provider costs its results, never the
// whole search.
type Aggregator struct {
	Providers []Provider
}

// NewAggregator constructs an Aggregator over the given providers.
func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{Providers: providers}
}

// Search queries all providers concurrently and concatenates the successes
// in provider order. Failures are logged and skipped.
func (a *Aggregator) Search(ctx context.Context, query, location string) []Job {
	type outcome struct {
		jobs []Job
		err  error
	}

	outcomes := make([]outcome, len(a.Providers))
	var wg sync.WaitGroup
	for i, p := range a.Providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					telemetry.Error("jobs.provider_panic", map[string]any{
						"provider": p.Name(),
						"panic":    r,
					})
				}
			}()
			jobs, err := p.Search(ctx, query, location)
			outcomes[i] = outcome{jobs: jobs, err: err}
		}(i, p)
	}
	wg.Wait()

	out := []Job{}
	for i, p := range a.Providers {
		if outcomes[i].err != nil {
			telemetry.Error("jobs.provider_failed", map[string]any{
				"provider": p.Name(),
				"error":    outcomes[i].err.Error(),
			})
			continue
		}
		out = append(out, outcomes[i].jobs...)
	}
	return out
}
