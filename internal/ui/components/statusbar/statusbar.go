// Package statusbar provides the status bar UI component.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcalaglez/icv-lite/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width       int
	message     string
	isError     bool
	profileName string
	dirty       bool
	invalid     bool
	editing     bool
}

// New creates a new status bar component.
func New() Model {
	return Model{}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// SetProfile updates the profile name shown next to the brand.
func (m *Model) SetProfile(name string) {
	m.profileName = name
}

// SetDirty toggles the unsaved-changes badge.
func (m *Model) SetDirty(dirty bool) {
	m.dirty = dirty
}

// SetInvalid toggles the validation badge.
func (m *Model) SetInvalid(invalid bool) {
	m.invalid = invalid
}

// SetEditing switches the help hints between list and editor mode.
func (m *Model) SetEditing(editing bool) {
	m.editing = editing
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render(" iCV Lite ")

	var badges []string
	if m.profileName != "" {
		badges = append(badges, lipgloss.NewStyle().
			Foreground(styles.Accent).
			Render(styles.TruncateWithEllipsis(m.profileName, 24)))
	}
	if m.invalid {
		badges = append(badges, styles.BadgeInvalid.Render("INVÁLIDO"))
	}
	if m.dirty {
		badges = append(badges, styles.BadgeDirty.Render("SIN GUARDAR"))
	} else if m.profileName != "" {
		badges = append(badges, styles.BadgeSaved.Render("GUARDADO"))
	}

	var helpItems []string
	if m.editing {
		helpItems = append(helpItems,
			m.renderKey("Ctrl+S", "guardar"),
			m.renderKey("Ctrl+Z", "descartar"),
			m.renderKey("Ctrl+P", "vista previa"),
			m.renderKey("+/-", "entrada"),
			m.renderKey("e", "exportar"),
			m.renderKey("Esc", "volver"),
		)
	} else {
		helpItems = append(helpItems,
			m.renderKey("Enter", "editar"),
			m.renderKey("a", "nuevo"),
			m.renderKey("c", "duplicar"),
			m.renderKey("d", "borrar"),
			m.renderKey("r", "renombrar"),
			m.renderKey("i", "importar"),
			m.renderKey("q", "salir"),
		)
	}
	help := strings.Join(helpItems, " ")

	var msgArea string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	leftContent := brand + strings.Join(badges, " ")
	rightContent := help
	middleContent := msgArea

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	middleWidth := lipgloss.Width(middleContent)

	padding := m.width - leftWidth - rightWidth - middleWidth
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	content := leftContent +
		strings.Repeat(" ", leftPad) +
		middleContent +
		strings.Repeat(" ", rightPad) +
		rightContent

	return lipgloss.NewStyle().
		Background(styles.Mantle).
		Foreground(styles.TextMuted).
		Width(m.width).
		Render(content)
}

// renderKey renders a key binding hint.
func (m Model) renderKey(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.Muted)
	return keyStyle.Render(key) + descStyle.Render(":"+desc)
}
