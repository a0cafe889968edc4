// Package profilelist provides the profile list UI component.
package profilelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/ui/styles"
)

// Model is the profile list component.
type Model struct {
	profiles []model.Profile
	cursor   int
	focused  bool
	width    int
	height   int
	offset   int
}

// New creates a new profile list component.
func New() Model {
	return Model{}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocused updates the focus state.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// SetProfiles updates the profile list, keeping the cursor in range.
func (m *Model) SetProfiles(profiles []model.Profile) {
	m.profiles = profiles
	if m.cursor >= len(m.profiles) && len(m.profiles) > 0 {
		m.cursor = len(m.profiles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// SelectByID moves the cursor to the profile with the given id.
func (m *Model) SelectByID(id string) {
	for i, p := range m.profiles {
		if p.ID == id {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}

// SelectedProfile returns the profile under the cursor.
func (m Model) SelectedProfile() *model.Profile {
	if m.cursor >= 0 && m.cursor < len(m.profiles) {
		p := m.profiles[m.cursor]
		return &p
	}
	return nil
}

// HandleKey processes a navigation key event.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
		return true
	case "down", "j":
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		if len(m.profiles) > 0 {
			m.cursor = len(m.profiles) - 1
			m.ensureVisible()
		}
		return true
	}
	return false
}

// View renders the profile list.
func (m Model) View() string {
	innerWidth := m.width - 4
	innerHeight := m.height - 4

	title := "Mis Currículums"
	if m.focused {
		title = styles.PanelTitleFocused.Render(title)
	} else {
		title = styles.PanelTitle.Render(title)
	}
	countStr := styles.ListItemDim.Render(fmt.Sprintf("(%d)", len(m.profiles)))
	header := title + " " + countStr

	var rows []string
	if len(m.profiles) == 0 {
		emptyMsg := styles.FieldPlaceholder.Render("No hay perfiles")
		hint := styles.ListItemDim.Render("Pulsa 'a' para crear uno")
		rows = append(rows, "", emptyMsg, hint)
	} else {
		visibleRows := innerHeight - 2
		if visibleRows < 1 {
			visibleRows = 1
		}

		endIdx := m.offset + visibleRows
		if endIdx > len(m.profiles) {
			endIdx = len(m.profiles)
		}

		for i := m.offset; i < endIdx; i++ {
			rows = append(rows, m.renderItem(m.profiles[i], i == m.cursor, innerWidth-2))
		}

		if len(m.profiles) > visibleRows {
			scrollInfo := fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.profiles))
			rows = append(rows, styles.ListItemDim.Render(scrollInfo))
		}
	}

	help := styles.ListItemDim.Render("Enter: editar - a: nuevo - c: duplicar - d: borrar - i: importar")
	contentRows := append(rows, "", help)

	content := lipgloss.JoinVertical(lipgloss.Left, contentRows...)

	var borderStyle lipgloss.Style
	if m.focused {
		borderStyle = styles.FocusedBorderStyle
	} else {
		borderStyle = styles.BorderStyle
	}

	return borderStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			strings.Repeat("─", max(innerWidth, 0)),
			content,
		))
}

func (m *Model) renderItem(p model.Profile, selected bool, maxWidth int) string {
	name := p.Name
	owner := strings.TrimSpace(p.Data.Basics.Name)
	detail := p.UpdatedAt.Format("02/01/2006")
	if owner != "" {
		detail = owner + " · " + detail
	}
	content := fmt.Sprintf("%s — %s", name, detail)
	content = styles.TruncateWithEllipsis(content, maxWidth)

	if selected {
		return styles.ListItemSelected.Render(content)
	}
	return styles.ListItem.Render(content)
}

func (m *Model) ensureVisible() {
	visibleRows := m.height - 6
	if visibleRows < 1 {
		visibleRows = 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visibleRows {
		m.offset = m.cursor - visibleRows + 1
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
