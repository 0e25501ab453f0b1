package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"jobportal-backend/internal/parse"
)

// PGRepo implements Repo using Postgres. The extracted profile is stored
// as a JSONB column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    job_id,
    file_name,
    sanitized_file_name,
    mime_type,
    size_bytes,
    file_hash,
    storage_key,
    profile,
    ats_score,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	profileJSON, err := json.Marshal(resume.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	var jobID sql.NullString
	if resume.JobID != "" {
		jobID = sql.NullString{String: resume.JobID, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		jobID,
		resume.FileName,
		resume.SanitizedFileName,
		resume.MimeType,
		resume.SizeBytes,
		resume.FileHash,
		resume.StorageKey,
		profileJSON,
		resume.ATSScore,
		resume.CreatedAt,
	)
	return err
}

const selectColumns = `id, user_id, job_id, file_name, sanitized_file_name, mime_type, size_bytes, file_hash, storage_key, profile, ats_score, created_at`

// GetByID returns a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID))
}

// ListByUser returns a user's resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// FindByHash returns the user's most recent resume with the given hash.
func (r *PGRepo) FindByHash(ctx context.Context, userID, fileHash string) (Resume, error) {
	query := `
SELECT ` + selectColumns + `
FROM resumes
WHERE user_id = $1 AND file_hash = $2 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, fileHash))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Resume, error) {
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var jobID sql.NullString
	var profileJSON []byte

	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&jobID,
		&resume.FileName,
		&resume.SanitizedFileName,
		&resume.MimeType,
		&resume.SizeBytes,
		&resume.FileHash,
		&resume.StorageKey,
		&profileJSON,
		&resume.ATSScore,
		&resume.CreatedAt,
	)
	if err != nil {
		return Resume{}, err
	}

	if jobID.Valid {
		resume.JobID = jobID.String
	}

	resume.Profile = parse.EmptyProfile()
	if len(profileJSON) > 0 {
		if err := json.Unmarshal(profileJSON, &resume.Profile); err != nil {
			return Resume{}, fmt.Errorf("unmarshal profile: %w", err)
		}
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)

// ClaimGuest reassigns resumes owned by a guest user to an authenticated user.
func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	const query = `
UPDATE resumes
SET user_id = $1
WHERE user_id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	updated, _ := res.RowsAffected()
	return int(updated), nil
}
