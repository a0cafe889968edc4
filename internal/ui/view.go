package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/render"
	"github.com/rcalaglez/icv-lite/internal/ui/styles"
)

// View renders the application.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "Cargando..."
	}
	if a.windowTooSmall() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			styles.FieldPlaceholder.Render("Ventana demasiado pequeña"))
	}

	if a.dialogMode != DialogNone {
		return a.inputDialog.View()
	}

	var content string
	switch a.viewMode {
	case ViewEditor:
		content = a.editorView()
	default:
		content = a.profileListView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
}

func (a App) profileListView() string {
	list := a.profileList.View()
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, list)
}

func (a App) editorView() string {
	_, previewWidth := a.editorLayout()

	form := a.form.View()
	if previewWidth <= 0 {
		return form
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, form, a.previewPane(previewWidth, a.height-1))
}

// previewPane renders the live template preview next to the form.
func (a App) previewPane(width, height int) string {
	tplID := model.DefaultTemplate().ID
	if p, ok := a.sessionProfile(); ok {
		tplID = p.Template.ID
	}

	innerWidth := width - 6
	innerHeight := height - 4
	if innerHeight < 1 {
		innerHeight = 1
	}

	var doc model.Document
	if a.engine != nil {
		doc = a.engine.Document()
	}

	rendered := render.Render(doc, tplID, innerWidth)
	lines := strings.Split(rendered, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
		lines = append(lines, styles.FieldPlaceholder.Render("···"))
	}

	title := styles.PanelTitle.Render("Vista Previa")
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, lines...)...)

	return styles.BorderStyle.
		Width(width - 2).
		Height(height - 2).
		Render(body)
}
