package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"jobportal-backend/internal/parse"
)

func TestPGRepoCreateStoresProfileJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	profile := parse.EmptyProfile()
	profile.FullName = "John Doe"
	profile.Email = "john@example.com"
	resume := Resume{
		ID:                "resume-1",
		UserID:            "user-1",
		JobID:             "job-1",
		FileName:          "resume.pdf",
		SanitizedFileName: "2025-06-01T10:30:00Zresume.pdf",
		MimeType:          "application/pdf",
		SizeBytes:         2048,
		FileHash:          "deadbeef",
		StorageKey:        "user-1/resume.pdf",
		Profile:           profile,
		ATSScore:          72,
		CreatedAt:         time.Now().UTC(),
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.JobID,
			resume.FileName,
			resume.SanitizedFileName,
			resume.MimeType,
			resume.SizeBytes,
			resume.FileHash,
			resume.StorageKey,
			profileJSON,
			resume.ATSScore,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScansProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC().Truncate(time.Second)
	profileJSON := []byte(`{"fullName":"John Doe","email":"john@example.com","skills":["Go"],"experience":[],"education":[],"certifications":[],"languages":[]}`)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "job_id", "file_name", "sanitized_file_name", "mime_type",
		"size_bytes", "file_hash", "storage_key", "profile", "ats_score", "created_at",
	}).AddRow(
		"resume-1", "user-1", nil, "resume.pdf", "2025-06-01T10:30:00Zresume.pdf",
		"application/pdf", int64(2048), "deadbeef", "user-1/resume.pdf", profileJSON, 72, created,
	)

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("resume-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.JobID != "" {
		t.Fatalf("expected empty jobId for NULL column, got %q", got.JobID)
	}
	if got.Profile.FullName != "John Doe" {
		t.Fatalf("expected profile name from JSONB, got %q", got.Profile.FullName)
	}
	if len(got.Profile.Skills) != 1 || got.Profile.Skills[0] != "Go" {
		t.Fatalf("expected parsed skills, got %v", got.Profile.Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
