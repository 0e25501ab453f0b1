package util

import (
	"regexp"
	"testing"
	"time"
)

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatal("expected error for traversal")
	}
	if _, err := SanitizeFileName("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestUploadFileNameReplacesUnsafeChars(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	got, err := UploadFileName("my resume with spaces & symbols!.pdf", now)
	if err != nil {
		t.Fatalf("UploadFileName: %v", err)
	}

	want := regexp.MustCompile(`^[\d\-T:Z]+my_resume_with_spaces___symbols_\.pdf$`)
	if !want.MatchString(got) {
		t.Fatalf("sanitized name %q does not match expected pattern", got)
	}
	if got != "2025-06-01T10:30:00Z"+"my_resume_with_spaces___symbols_.pdf" {
		t.Fatalf("unexpected name: %q", got)
	}
}

func TestUploadFileNameKeepsDotsAndDashes(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	got, err := UploadFileName("jane-doe.v2.pdf", now)
	if err != nil {
		t.Fatalf("UploadFileName: %v", err)
	}
	if got != "2025-06-01T10:30:00Zjane-doe.v2.pdf" {
		t.Fatalf("unexpected name: %q", got)
	}
}
