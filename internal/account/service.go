package account

import (
	"context"
	"errors"
	"strings"

	"jobportal-backend/internal/resumes"
)

type Service struct {
	ResumesRepo resumes.Repo
}

type ClaimResult struct {
	MigratedResumes int `json:"migratedResumes"`
}

func NewService(resumesRepo resumes.Repo) *Service {
	return &Service{ResumesRepo: resumesRepo}
}

// ClaimGuest moves resumes uploaded under a guest identity to the
// authenticated account, so history survives login.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	count, err := claimResumes(ctx, s.ResumesRepo, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedResumes: count}, nil
}

type guestResumeClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error)
}

func claimResumes(ctx context.Context, repo resumes.Repo, guestUserID, authedUserID string) (int, error) {
	if claimer, ok := repo.(guestResumeClaimer); ok {
		return claimer.ClaimGuest(ctx, guestUserID, authedUserID)
	}
	return 0, errors.New("resumes repo does not support claim")
}
