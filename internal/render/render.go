package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rcalaglez/icv-lite/internal/model"
)

const minWidth = 24

// RenderFunc renders a document at a given column width.
type RenderFunc func(doc model.Document, width int) string

// registry maps template ids to their renderers. Catalog entries without
// a renderer degrade to the not-found placeholder, never to an error.
var registry = map[model.TemplateID]RenderFunc{
	model.TemplateHarvardMinimal: renderHarvardMinimal,
}

// Render produces the visual representation of a document. An unknown
// template id yields a visible placeholder instead of failing.
func Render(doc model.Document, id model.TemplateID, width int) string {
	if width < minWidth {
		width = minWidth
	}
	fn, ok := registry[id]
	if !ok {
		return renderMissingTemplate(id, width)
	}
	return fn(doc, width)
}

func renderMissingTemplate(id model.TemplateID, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(width - 2)
	return box.Render("Plantilla no encontrada: " + string(id))
}
