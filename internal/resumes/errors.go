package resumes

import "errors"

var (
	ErrNotFound        = errors.New("resume not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrForbidden       = errors.New("resume belongs to another user")
	ErrUnsupportedType = errors.New("unsupported file type")
)
