package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingReader records whether anyone attempted a read.
type trackingReader struct {
	read bool
}

func (r *trackingReader) Read(p []byte) (int, error) {
	r.read = true
	return 0, errors.New("should not be read")
}

func TestUnsupportedTypeFailsBeforeReading(t *testing.T) {
	svc := NewService()
	r := &trackingReader{}

	_, err := svc.ImportFile(context.Background(), File{
		Name:      "cv.txt",
		MediaType: "text/plain",
		Reader:    r,
	})

	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "text/plain")
	assert.False(t, r.read)
}

func TestImportJSONResume(t *testing.T) {
	svc := NewService()
	content := `{
		"basics": {"name": "Carlos Ruiz", "label": "Backend Developer"},
		"work": [{"name": "Acme", "position": "Dev", "startDate": "2020-01-01"}]
	}`

	doc, err := svc.ImportFile(context.Background(), File{
		Name:      "cv.json",
		MediaType: MediaTypeJSON,
		Reader:    strings.NewReader(content),
	})

	require.NoError(t, err)
	assert.Equal(t, "Carlos Ruiz", doc.Basics.Name)
	require.Len(t, doc.Work, 1)
	assert.Equal(t, "Acme", doc.Work[0].Name)
}

func TestImportMalformedJSON(t *testing.T) {
	svc := NewService()

	_, err := svc.ImportFile(context.Background(), File{
		Name:      "cv.json",
		MediaType: MediaTypeJSON,
		Reader:    strings.NewReader("{broken"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

// Schema violations are not the importer's concern: structurally valid
// JSON imports even when fields the editor requires are missing.
func TestImportDoesNotValidateSchema(t *testing.T) {
	svc := NewService()

	doc, err := svc.ImportFile(context.Background(), File{
		Name:      "cv.json",
		MediaType: MediaTypeJSON,
		Reader:    strings.NewReader(`{"basics": {"email": "x"}}`),
	})

	require.NoError(t, err)
	assert.Empty(t, doc.Basics.Name)
}

func TestImportReadFailureIsWrapped(t *testing.T) {
	svc := NewService()

	_, err := svc.ImportFile(context.Background(), File{
		Name:      "cv.json",
		MediaType: MediaTypeJSON,
		Reader:    &trackingReader{},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}

func TestImportCancelledContext(t *testing.T) {
	svc := NewService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ImportFile(ctx, File{
		Name:      "cv.json",
		MediaType: MediaTypeJSON,
		Reader:    strings.NewReader("{}"),
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegisterReplacesImporter(t *testing.T) {
	svc := NewService()
	svc.Register("text/plain", JSONImporter{})

	// The registered importer still rejects the mismatched media type,
	// but dispatch itself succeeds.
	_, err := svc.ImportFile(context.Background(), File{
		Name:      "cv.txt",
		MediaType: "text/plain",
		Reader:    strings.NewReader("{}"),
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestDetectMediaType(t *testing.T) {
	assert.Equal(t, "application/json", DetectMediaType("/tmp/cv.json"))
	assert.Equal(t, "application/json", DetectMediaType("cv.JSON"))
	assert.Equal(t, "text/plain", DetectMediaType("notes.txt"))
	assert.Equal(t, "", DetectMediaType("archivo.unknownext"))
	assert.Equal(t, "", DetectMediaType("sin-extension"))
}
