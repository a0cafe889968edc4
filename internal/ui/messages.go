// Package ui provides the terminal user interface for iCV Lite.
package ui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcalaglez/icv-lite/internal/importer"
	"github.com/rcalaglez/icv-lite/internal/model"
)

// engineTickInterval drives the form sync engine clock. It only needs
// to be finer than the debounce interval, not precise.
const engineTickInterval = 100 * time.Millisecond

// EngineTickMsg advances the form sync engine.
type EngineTickMsg time.Time

// ImportResultMsg reports the outcome of a file import.
type ImportResultMsg struct {
	ProfileID string
	Name      string
	Path      string
	Err       error
}

// ExportResultMsg reports the outcome of a document export.
type ExportResultMsg struct {
	Name string
	Path string
	Err  error
}

// EngineTick returns a command that emits the next engine tick.
func EngineTick() tea.Cmd {
	return tea.Tick(engineTickInterval, func(t time.Time) tea.Msg {
		return EngineTickMsg(t)
	})
}

// ImportFile returns a command that reads a résumé file and stores it as
// a new profile.
func ImportFile(svc *importer.Service, addProfile func(model.Document, string) string, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return ImportResultMsg{Path: path, Err: err}
		}
		defer f.Close()

		doc, err := svc.ImportFile(context.Background(), importer.File{
			Name:      f.Name(),
			MediaType: importer.DetectMediaType(path),
			Reader:    f,
		})
		if err != nil {
			return ImportResultMsg{Path: path, Err: err}
		}

		name := suggestedName(doc)
		id := addProfile(doc, name)
		return ImportResultMsg{ProfileID: id, Name: name, Path: path}
	}
}

// ExportDocument returns a command that writes the document as formatted
// JSON to the given path.
func ExportDocument(doc model.Document, name, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := doc.PrettyJSON()
		if err != nil {
			return ExportResultMsg{Name: name, Path: path, Err: err}
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return ExportResultMsg{Name: name, Path: path, Err: err}
		}
		return ExportResultMsg{Name: name, Path: path}
	}
}

func suggestedName(doc model.Document) string {
	if doc.Basics.Name != "" {
		return doc.Basics.Name
	}
	return model.ImportedProfileName
}
