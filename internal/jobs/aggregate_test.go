package jobs

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name  string
	jobs  []Job
	err   error
	panic bool
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, query, location string) ([]Job, error) {
	s.calls++
	if s.panic {
		panic("provider exploded")
	}
	return s.jobs, s.err
}

func TestAggregatorConcatenatesSuccesses(t *testing.T) {
	a := NewAggregator(
		&stubProvider{name: "one", jobs: []Job{{ID: "one-1", Title: "Go Developer"}}},
		&stubProvider{name: "two", jobs: []Job{{ID: "two-1"}, {ID: "two-2"}}},
	)

	out := a.Search(context.Background(), "go", "")
	if len(out) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(out))
	}
	if out[0].ID != "one-1" || out[1].ID != "two-1" {
		t.Fatalf("expected provider-order concat, got %v", out)
	}
}

func TestAggregatorToleratesFailures(t *testing.T) {
	a := NewAggregator(
		&stubProvider{name: "broken", err: errors.New("upstream down")},
		&stubProvider{name: "panicky", panic: true},
		&stubProvider{name: "healthy", jobs: []Job{{ID: "h-1"}}},
	)

	out := a.Search(context.Background(), "go", "london")
	if len(out) != 1 {
		t.Fatalf("expected 1 job from the healthy provider, got %d", len(out))
	}
	if out[0].ID != "h-1" {
		t.Fatalf("expected h-1, got %q", out[0].ID)
	}
}

func TestAggregatorEmptyWithoutProviders(t *testing.T) {
	a := NewAggregator()
	out := a.Search(context.Background(), "go", "")
	if out == nil {
		t.Fatalf("expected non-nil slice")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}
