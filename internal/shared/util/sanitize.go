package util

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadFileName produces the stored name for an uploaded file: a UTC
// timestamp prefix followed by the original base name with every character
// outside [a-zA-Z0-9.-] replaced by an underscore.
func UploadFileName(name string, now time.Time) (string, error) {
	base, err := SanitizeFileName(name)
	if err != nil {
		return "", err
	}
	safe := unsafeFileChars.ReplaceAllString(base, "_")
	return now.UTC().Format(time.RFC3339) + safe, nil
}
