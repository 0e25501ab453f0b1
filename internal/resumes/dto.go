package resumes

import (
	"time"

	"jobportal-backend/internal/analysis"
	"jobportal-backend/internal/parse"
)

type uploadData struct {
	FileID            string          `json:"fileId"`
	FileName          string          `json:"fileName"`
	SanitizedFileName string          `json:"sanitizedFileName"`
	FileSize          int64           `json:"fileSize"`
	FileType          string          `json:"fileType"`
	FileHash          string          `json:"fileHash"`
	UploadedBy        string          `json:"uploadedBy"`
	JobID             string          `json:"jobId,omitempty"`
	Profile           parse.Profile   `json:"profile"`
	Analysis          analysis.Result `json:"analysis"`
	Fallback          bool            `json:"fallback"`
	FailedStages      []string        `json:"failedStages,omitempty"`
	Duplicate         bool            `json:"duplicate,omitempty"`
}

func toUploadData(res UploadResult) uploadData {
	return uploadData{
		FileID:            res.Resume.ID,
		FileName:          res.Resume.FileName,
		SanitizedFileName: res.Resume.SanitizedFileName,
		FileSize:          res.Resume.SizeBytes,
		FileType:          res.Resume.MimeType,
		FileHash:          res.Resume.FileHash,
		UploadedBy:        res.Resume.UserID,
		JobID:             res.Resume.JobID,
		Profile:           res.Pipeline.Profile,
		Analysis:          res.Pipeline.Analysis,
		Fallback:          res.Pipeline.Degraded,
		FailedStages:      res.Pipeline.FailedStages,
		Duplicate:         res.Duplicate,
	}
}

type analyzeRequest struct {
	ResumeData *parse.Profile `json:"resumeData"`
	ResumeText string         `json:"resumeText"`
	UserID     string         `json:"userId"`
}

type analyzeResponse struct {
	Success      bool            `json:"success"`
	Analysis     analysis.Result `json:"analysis"`
	EnhancedData *parse.Profile  `json:"enhancedData,omitempty"`
}

type resumeData struct {
	FileID            string        `json:"fileId"`
	FileName          string        `json:"fileName"`
	SanitizedFileName string        `json:"sanitizedFileName"`
	FileSize          int64         `json:"fileSize"`
	FileType          string        `json:"fileType"`
	FileHash          string        `json:"fileHash"`
	UploadedBy        string        `json:"uploadedBy"`
	JobID             string        `json:"jobId,omitempty"`
	ATSScore          int           `json:"atsScore"`
	Profile           parse.Profile `json:"profile"`
	UploadedAt        time.Time     `json:"uploadedAt"`
}

func toResumeData(r Resume) resumeData {
	return resumeData{
		FileID:            r.ID,
		FileName:          r.FileName,
		SanitizedFileName: r.SanitizedFileName,
		FileSize:          r.SizeBytes,
		FileType:          r.MimeType,
		FileHash:          r.FileHash,
		UploadedBy:        r.UserID,
		JobID:             r.JobID,
		ATSScore:          r.ATSScore,
		Profile:           r.Profile,
		UploadedAt:        r.CreatedAt,
	}
}

type resumeSummary struct {
	FileID     string    `json:"fileId"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	ATSScore   int       `json:"atsScore"`
	JobID      string    `json:"jobId,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResumeSummaries(list []Resume) []resumeSummary {
	out := make([]resumeSummary, 0, len(list))
	for _, r := range list {
		out = append(out, resumeSummary{
			FileID:     r.ID,
			FileName:   r.FileName,
			FileType:   r.MimeType,
			FileSize:   r.SizeBytes,
			ATSScore:   r.ATSScore,
			JobID:      r.JobID,
			UploadedAt: r.CreatedAt,
		})
	}
	return out
}
