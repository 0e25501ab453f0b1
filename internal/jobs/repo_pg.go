package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// PGRepo implements Repo using Postgres. List queries are built with
// squirrel since the filter set varies per request.
type PGRepo struct {
	DB *sql.DB
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Upsert inserts a posting or refreshes an existing one.
func (r *PGRepo) Upsert(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (
    id, source, source_id, title, company, location, description,
    url, salary_min, salary_max, remote, posted_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    company = EXCLUDED.company,
    location = EXCLUDED.location,
    description = EXCLUDED.description,
    url = EXCLUDED.url,
    salary_min = EXCLUDED.salary_min,
    salary_max = EXCLUDED.salary_max,
    remote = EXCLUDED.remote,
    posted_at = EXCLUDED.posted_at`

	var postedAt sql.NullTime
	if job.PostedAt != nil {
		postedAt = sql.NullTime{Time: *job.PostedAt, Valid: true}
	}
	createdAt := job.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.Source,
		job.SourceID,
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		job.URL,
		job.SalaryMin,
		job.SalaryMax,
		job.Remote,
		postedAt,
		createdAt,
	)
	return err
}

// GetByID returns a posting by ID.
func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	query, args, err := psql.
		Select(jobColumns()...).
		From("jobs").
		Where(sq.Eq{"id": jobID}).
		ToSql()
	if err != nil {
		return Job{}, err
	}

	job, err := scanJob(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// List returns postings matching the filter, newest first.
func (r *PGRepo) List(ctx context.Context, filter ListFilter) ([]Job, error) {
	builder := psql.
		Select(jobColumns()...).
		From("jobs").
		OrderBy("created_at DESC")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if filter.Location != "" {
		builder = builder.Where(sq.ILike{"location": "%" + filter.Location + "%"})
	}
	if filter.Company != "" {
		builder = builder.Where(sq.ILike{"company": "%" + filter.Company + "%"})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func jobColumns() []string {
	return []string{
		"id", "source", "source_id", "title", "company", "location",
		"description", "url", "salary_min", "salary_max", "remote",
		"posted_at", "created_at",
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var url sql.NullString
	var postedAt sql.NullTime

	err := row.Scan(
		&job.ID,
		&job.Source,
		&job.SourceID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Description,
		&url,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.Remote,
		&postedAt,
		&job.CreatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	if url.Valid {
		job.URL = url.String
	}
	if postedAt.Valid {
		t := postedAt.Time
		job.PostedAt = &t
	}
	return job, nil
}

var _ Repo = (*PGRepo)(nil)
