// ABOUTME: Tests for the loader registry and source naming
// ABOUTME: Verifies unsupported-format rejection and case-insensitive matching
package loader

import (
	"errors"
	"strings"
	"testing"

	"docqa/internal/models"
)

type stubLoader struct {
	pages []models.Page
}

func (s *stubLoader) Load(path string) ([]models.Page, error) {
	return s.pages, nil
}

func TestRegistry_UnsupportedFormat(t *testing.T) {
	r := NewRegistry()

	pages, err := r.Load("report.txt")
	if pages != nil {
		t.Errorf("expected nil pages, got %d", len(pages))
	}

	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if ufe.Path != "report.txt" {
		t.Errorf("error path = %q, want report.txt", ufe.Path)
	}
	if !strings.Contains(err.Error(), "report.txt") {
		t.Errorf("error message %q should name the file", err.Error())
	}
}

func TestRegistry_Supports(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		path string
		want bool
	}{
		{"manual.pdf", true},
		{"MANUAL.PDF", true},
		{"Mixed.Pdf", true},
		{"notes.txt", false},
		{"archive.pdf.gz", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := r.Supports(tt.path); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	stub := &stubLoader{pages: []models.Page{{Number: 1, Text: "stub"}}}
	r.Register(".PDF", stub)

	pages, err := r.Load("anything.pdf")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(pages) != 1 || pages[0].Text != "stub" {
		t.Errorf("expected stub loader to be selected, got %+v", pages)
	}
}

func TestSourceName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"manual.pdf", "manual"},
		{"/tmp/uploads/MN414_0224.pdf", "MN414_0224"},
		{"dir/report.v2.pdf", "report.v2"},
		{"noextension", "noextension"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := SourceName(tt.path); got != tt.want {
				t.Errorf("SourceName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
