// ABOUTME: Document loader registry keyed by file extension
// ABOUTME: Rejects anything without a registered loader with UnsupportedFormatError
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"docqa/internal/models"
)

// Loader parses one supported format into ordered pages.
type Loader interface {
	Load(path string) ([]models.Page, error)
}

// UnsupportedFormatError reports a file whose extension has no
// registered loader.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format for file: %s, please upload a PDF file", filepath.Base(e.Path))
}

// Registry maps lower-cased file extensions to loaders. Exactly one
// loader is active per format; selection is deterministic.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry returns a registry with the default PDF loader installed.
func NewRegistry() *Registry {
	r := &Registry{loaders: make(map[string]Loader)}
	r.Register(".pdf", NewPDFLoader())
	return r
}

// Register installs a loader for an extension, replacing any previous
// loader for the same extension.
func (r *Registry) Register(ext string, l Loader) {
	r.loaders[strings.ToLower(ext)] = l
}

// Supports reports whether a file's extension has a registered loader.
// Matching is case-insensitive.
func (r *Registry) Supports(path string) bool {
	_, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load parses the file with the loader registered for its extension.
func (r *Registry) Load(path string) ([]models.Page, error) {
	l, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &UnsupportedFormatError{Path: path}
	}
	return l.Load(path)
}

// SourceName derives a document's stable name from its file path: the
// base name with the extension stripped.
func SourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
