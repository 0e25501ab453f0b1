package resumes

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/extract"
	"jobportal-backend/internal/shared/server/middleware"
	"jobportal-backend/internal/shared/server/respond"
)

const defaultMaxUploadBytes = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) maxUploadBytes() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return defaultMaxUploadBytes
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/upload", h.upload)
	rg.POST("/resumes/analyze", h.analyze)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
		return
	}

	maxBytes := h.maxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		if isTooLarge(err) {
			respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{sizeLimitMessage(maxBytes)})
			return
		}
		respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{"File is required"})
		return
	}
	if fileHeader.Size > maxBytes {
		respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{sizeLimitMessage(maxBytes)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{"Unable to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{sizeLimitMessage(maxBytes)})
			return
		}
		respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{"Unable to read file"})
		return
	}

	res, err := h.Svc.Upload(c.Request.Context(), UploadInput{
		UserID:   userID,
		JobID:    strings.TrimSpace(c.PostForm("jobId")),
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{
				"Invalid file type. Allowed types: " + strings.Join(extract.SupportedMimeTypes(), ", "),
			})
		case errors.Is(err, ErrInvalidInput):
			respond.ValidationErrors(c, http.StatusBadRequest, "upload rejected", []string{err.Error()})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume", nil)
		}
		return
	}

	c.Set("resumeId", res.Resume.ID)
	if res.Resume.JobID != "" {
		c.Set("jobId", res.Resume.JobID)
	}
	respond.Success(c, http.StatusOK, toUploadData(res), "Resume uploaded and analyzed successfully")
}

func sizeLimitMessage(maxBytes int64) string {
	return fmt.Sprintf("File size exceeds the %dMB limit", maxBytes>>20)
}

// isTooLarge matches the body-limit error regardless of how the multipart
// reader surfaces it.
func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.ValidationErrors(c, http.StatusBadRequest, "invalid request body", []string{"Request body must be valid JSON"})
		return
	}

	req.ResumeText = strings.TrimSpace(req.ResumeText)
	if req.ResumeData == nil && req.ResumeText == "" {
		respond.ValidationErrors(c, http.StatusBadRequest, "invalid request", []string{"Either resumeData or resumeText is required"})
		return
	}

	var resp analyzeResponse
	resp.Success = true
	if req.ResumeData != nil {
		result, enhanced := h.Svc.AnalyzeProfile(*req.ResumeData)
		resp.Analysis = result
		resp.EnhancedData = &enhanced
	} else {
		profile, result := h.Svc.AnalyzeText(req.ResumeText)
		resp.Analysis = result
		resp.EnhancedData = &profile
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	resume, err := h.Svc.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another user", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.Success(c, http.StatusOK, toResumeData(resume), "")
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		}
		return
	}

	respond.Success(c, http.StatusOK, gin.H{
		"resumes": toResumeSummaries(list),
		"limit":   limit,
		"offset":  offset,
	}, "")
}
