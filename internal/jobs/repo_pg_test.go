package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	posted := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	job := Job{
		ID:          "adzuna-123",
		Source:      "adzuna",
		SourceID:    "123",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "London",
		Description: "Build APIs in Go",
		URL:         "https://example.com/123",
		SalaryMin:   50000,
		SalaryMax:   70000,
		PostedAt:    &posted,
	}

	mock.ExpectExec("INSERT INTO jobs").
		WithArgs(
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
			posted,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), job); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rows := sqlmock.NewRows(jobColumns()).AddRow(
		"adzuna-123", "adzuna", "123", "Backend Engineer", "Acme", "London",
		"Build APIs in Go", "https://example.com/123", 50000.0, 70000.0, false,
		nil, time.Now().UTC(),
	)

	mock.ExpectQuery(`SELECT .+ FROM jobs WHERE \(title ILIKE \$1 OR description ILIKE \$2\) AND location ILIKE \$3 ORDER BY created_at DESC LIMIT 10`).
		WithArgs("%go%", "%go%", "%london%").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), ListFilter{Query: "go", Location: "london", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 job, got %d", len(list))
	}
	if list[0].URL != "https://example.com/123" {
		t.Fatalf("unexpected job: %+v", list[0])
	}
	if list[0].PostedAt != nil {
		t.Fatalf("expected nil postedAt for NULL column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery(`SELECT .+ FROM jobs WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(jobColumns()))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
