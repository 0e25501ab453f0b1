package jobs

import "context"

// ListFilter narrows a stored-postings listing. Zero values mean "any".
type ListFilter struct {
	Query    string
	Location string
	Company  string
	Limit    int
	Offset   int
}

// Repo defines persistence operations for stored job postings.
type Repo interface {
	Upsert(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	List(ctx context.Context, filter ListFilter) ([]Job, error)
}
