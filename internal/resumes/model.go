package resumes

import (
	"time"

	"jobportal-backend/internal/parse"
)

// Resume is a stored upload together with its extracted profile.
type Resume struct {
	ID                string
	UserID            string
	JobID             string
	FileName          string
	SanitizedFileName string
	MimeType          string
	SizeBytes         int64
	FileHash          string
	StorageKey        string
	Profile           parse.Profile
	ATSScore          int
	CreatedAt         time.Time
}
