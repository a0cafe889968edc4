// Package importer turns uploaded résumé files into documents,
// dispatching to a format-specific parser by declared media type.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	"github.com/rcalaglez/icv-lite/internal/model"
)

// ErrUnsupportedType is returned when no importer is registered for the
// file's declared media type. The file is never read in that case.
var ErrUnsupportedType = errors.New("no importer available for file type")

// File is one uploaded file: a name, a declared media type and content.
type File struct {
	Name      string
	MediaType string
	Reader    io.Reader
}

// Importer parses one file format into a résumé document.
type Importer interface {
	Import(ctx context.Context, f File) (model.Document, error)
}

// Service dispatches files to registered importers. It holds no
// format-specific logic itself.
type Service struct {
	importers map[string]Importer
}

// NewService creates a Service with the JSON importer registered.
func NewService() *Service {
	s := &Service{importers: make(map[string]Importer)}
	s.Register(MediaTypeJSON, JSONImporter{})
	return s
}

// Register adds an importer under a media type key, replacing any
// previous registration.
func (s *Service) Register(mediaType string, imp Importer) {
	s.importers[mediaType] = imp
}

// ImportFile parses the file into a document. Unregistered media types
// fail immediately, before any read attempt.
func (s *Service) ImportFile(ctx context.Context, f File) (model.Document, error) {
	imp, ok := s.importers[f.MediaType]
	if !ok {
		return model.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedType, f.MediaType)
	}
	return imp.Import(ctx, f)
}

// DetectMediaType guesses a media type from the file extension, without
// parameters. Unknown extensions yield "".
func DetectMediaType(path string) string {
	t := mime.TypeByExtension(filepath.Ext(path))
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return mediaType
}
