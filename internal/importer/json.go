package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rcalaglez/icv-lite/internal/model"
)

// MediaTypeJSON is the media type handled by JSONImporter.
const MediaTypeJSON = "application/json"

// JSONImporter parses JSON Resume files. The parsed document is not
// validated against the résumé schema; the editor surfaces field errors
// once the document is opened.
type JSONImporter struct{}

// Import reads the whole file and structurally parses it.
func (JSONImporter) Import(ctx context.Context, f File) (model.Document, error) {
	if f.MediaType != MediaTypeJSON {
		return model.Document{}, fmt.Errorf("invalid file type %q, expected JSON", f.MediaType)
	}
	if err := ctx.Err(); err != nil {
		return model.Document{}, err
	}

	content, err := io.ReadAll(f.Reader)
	if err != nil {
		return model.Document{}, fmt.Errorf("reading file: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return model.Document{}, fmt.Errorf("parsing JSON résumé: %w", err)
	}
	return doc, nil
}
