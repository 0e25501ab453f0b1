package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobportal-backend/internal/analysis"
	"jobportal-backend/internal/extract"
	"jobportal-backend/internal/parse"
	"jobportal-backend/internal/pipeline"
	"jobportal-backend/internal/shared/storage/object"
	"jobportal-backend/internal/shared/telemetry"
	"jobportal-backend/internal/shared/util"
)

// Service contains business logic for resumes.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	Opts  pipeline.Options
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// UploadInput is one uploaded file plus its ownership context.
type UploadInput struct {
	UserID   string
	JobID    string
	FileName string
	MimeType string
	Data     []byte
}

// UploadResult pairs the stored record with the pipeline outcome so callers
// can report degraded analyses without re-reading storage.
type UploadResult struct {
	Resume    Resume
	Pipeline  pipeline.Result
	Duplicate bool
}

// Upload validates the file, stores it, runs the analysis pipeline and
// persists the record. A degraded pipeline run still persists; only
// validation and storage failures are errors.
func (s *Service) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if in.UserID == "" || in.FileName == "" || len(in.Data) == 0 {
		return UploadResult{}, ErrInvalidInput
	}
	if !extract.IsSupportedMimeType(in.MimeType, in.FileName, in.Data) {
		return UploadResult{}, ErrUnsupportedType
	}

	fileHash := util.HashBytes(in.Data)
	sanitized, err := util.UploadFileName(in.FileName, s.now())
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	duplicate := false
	if prev, err := s.Repo.FindByHash(ctx, in.UserID, fileHash); err == nil {
		duplicate = true
		telemetry.Info("resumes.duplicate_upload", map[string]any{
			"userId":     in.UserID,
			"previousId": prev.ID,
		})
	} else if !errors.Is(err, ErrNotFound) {
		return UploadResult{}, err
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, in.UserID, sanitized, bytes.NewReader(in.Data))
	if err != nil {
		return UploadResult{}, err
	}
	if mimeType == "" {
		mimeType = in.MimeType
	}

	run := pipeline.Run(ctx, pipeline.Document{
		Data:     in.Data,
		MimeType: in.MimeType,
		FileName: in.FileName,
	}, s.Opts)

	resume := Resume{
		ID:                uuid.NewString(),
		UserID:            in.UserID,
		JobID:             in.JobID,
		FileName:          in.FileName,
		SanitizedFileName: sanitized,
		MimeType:          mimeType,
		SizeBytes:         size,
		FileHash:          fileHash,
		StorageKey:        storageKey,
		Profile:           run.Profile,
		ATSScore:          run.Analysis.ATSScore,
		CreatedAt:         s.now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return UploadResult{}, err
	}

	return UploadResult{Resume: resume, Pipeline: run, Duplicate: duplicate}, nil
}

// AnalyzeProfile scores an already-parsed profile and returns the enhanced
// copy alongside the analysis.
func (s *Service) AnalyzeProfile(p parse.Profile) (analysis.Result, parse.Profile) {
	p = p.Normalize()
	return analysis.Analyze(p), analysis.Enhance(p)
}

// AnalyzeText parses raw resume text and scores the result.
func (s *Service) AnalyzeText(text string) (parse.Profile, analysis.Result) {
	p := parse.Parse(text)
	return p, analysis.Analyze(p)
}

// Get returns a resume, enforcing ownership.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
