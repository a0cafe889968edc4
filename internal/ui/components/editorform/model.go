// Package editorform provides the résumé form UI component. The form is
// a flat list of rows rebuilt from the current document snapshot; edits
// are handed back to the caller as mutation closures.
package editorform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcalaglez/icv-lite/internal/editor"
	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/ui/styles"
)

type rowKind int

const (
	rowSection rowKind = iota
	rowField
)

// row is a single line of the form. Field rows carry an apply closure
// that writes the edited value into a document.
type row struct {
	kind  rowKind
	id    string
	label string
	value string
	err   string

	apply func(*model.Document, string)

	// addRef is the list "+" appends to when this row is under the
	// cursor. removeRef/removeIdx drive "-".
	addRef    editor.ListRef
	hasAdd    bool
	removeRef editor.ListRef
	removeIdx int
	removable bool
}

// Model is the editor form component.
type Model struct {
	rows    []row
	cursor  int
	offset  int
	focused bool
	width   int
	height  int

	editing bool
	input   textinput.Model
}

// New creates a new editor form component.
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

// Editing reports whether a field is being edited.
func (m Model) Editing() bool {
	return m.editing
}

// Rebuild reconstructs the form rows from a document snapshot. The
// cursor stays on the same row id when it survives the rebuild.
func (m *Model) Rebuild(doc model.Document, errs map[string]string) {
	var prevID string
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		prevID = m.rows[m.cursor].id
	}

	m.rows = buildRows(doc, errs)

	if prevID != "" {
		for i, r := range m.rows {
			if r.id == prevID {
				m.cursor = i
				m.ensureVisible()
				return
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// HandleKey processes a navigation key event while not editing.
func (m *Model) HandleKey(key string) bool {
	if m.editing {
		return false
	}
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
		return true
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureVisible()
		}
		return true
	case "home", "g":
		m.cursor = 0
		m.offset = 0
		return true
	case "end", "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
			m.ensureVisible()
		}
		return true
	}
	return false
}

// StartEditing opens the inline input on the field under the cursor.
func (m *Model) StartEditing() bool {
	if m.editing || m.cursor < 0 || m.cursor >= len(m.rows) {
		return false
	}
	r := m.rows[m.cursor]
	if r.kind != rowField || r.apply == nil {
		return false
	}

	ti := textinput.New()
	ti.SetValue(r.value)
	ti.CharLimit = 512
	ti.Width = m.width - 8
	if ti.Width < 20 {
		ti.Width = 20
	}
	ti.Focus()
	ti.CursorEnd()

	m.input = ti
	m.editing = true
	return true
}

// UpdateInput forwards a message to the inline input.
func (m *Model) UpdateInput(msg tea.Msg) tea.Cmd {
	if !m.editing {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// CommitEdit closes the inline input and returns a mutation closure for
// the edited field.
func (m *Model) CommitEdit() (func(*model.Document), bool) {
	if !m.editing || m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil, false
	}
	r := m.rows[m.cursor]
	value := m.input.Value()
	m.editing = false

	if r.apply == nil {
		return nil, false
	}
	apply := r.apply
	return func(doc *model.Document) {
		apply(doc, value)
	}, true
}

// CancelEdit closes the inline input without applying.
func (m *Model) CancelEdit() {
	m.editing = false
}

// AddTarget returns the list the cursor row appends to.
func (m Model) AddTarget() (editor.ListRef, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return editor.ListRef{}, false
	}
	r := m.rows[m.cursor]
	return r.addRef, r.hasAdd
}

// RemoveTarget returns the list entry the cursor row belongs to.
func (m Model) RemoveTarget() (editor.ListRef, int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return editor.ListRef{}, 0, false
	}
	r := m.rows[m.cursor]
	return r.removeRef, r.removeIdx, r.removable
}

// View renders the form.
func (m Model) View() string {
	innerWidth := m.width - 4
	innerHeight := m.height - 2

	var lines []string
	visibleRows := innerHeight - 2
	if visibleRows < 1 {
		visibleRows = 1
	}

	endIdx := m.offset + visibleRows
	if endIdx > len(m.rows) {
		endIdx = len(m.rows)
	}

	for i := m.offset; i < endIdx; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, innerWidth))
	}

	if len(m.rows) > visibleRows {
		lines = append(lines, styles.ListItemDim.Render(fmt.Sprintf(" %d/%d ", m.cursor+1, len(m.rows))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	borderStyle := styles.BorderStyle
	if m.focused {
		borderStyle = styles.FocusedBorderStyle
	}

	return borderStyle.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(content)
}

func (m Model) renderRow(r row, selected bool, width int) string {
	if r.kind == rowSection {
		return styles.SectionHeader.Render(r.label)
	}

	labelStyle := styles.FieldLabel
	if selected {
		labelStyle = styles.FieldLabelSelected
	}
	label := labelStyle.Render(r.label + ":")

	var value string
	switch {
	case selected && m.editing:
		value = m.input.View()
	case r.value == "":
		value = styles.FieldPlaceholder.Render("—")
	default:
		value = styles.FieldValue.Render(styles.TruncateWithEllipsis(r.value, width-lipgloss.Width(label)-3))
	}

	line := "  " + label + " " + value
	if r.err != "" {
		line += " " + styles.FieldError.Render(r.err)
	}
	if selected && !m.editing {
		return styles.ListItemSelected.Render(line)
	}
	return line
}

func (m *Model) ensureVisible() {
	visibleRows := m.height - 4
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

// ---------- Row construction ----------

func buildRows(doc model.Document, errs map[string]string) []row {
	var rows []row

	field := func(id, label, value string, apply func(*model.Document, string)) row {
		return row{
			kind:  rowField,
			id:    id,
			label: label,
			value: value,
			err:   errs[id],
			apply: apply,
		}
	}

	// Datos personales
	rows = append(rows, row{kind: rowSection, id: "hdr:basics", label: "Datos Personales"})
	rows = append(rows,
		field("basics.name", "Nombre", doc.Basics.Name, func(d *model.Document, v string) { d.Basics.Name = v }),
		field("basics.label", "Profesión", doc.Basics.Label, func(d *model.Document, v string) { d.Basics.Label = v }),
		field("basics.email", "Email", doc.Basics.Email, func(d *model.Document, v string) { d.Basics.Email = v }),
		field("basics.phone", "Teléfono", doc.Basics.Phone, func(d *model.Document, v string) { d.Basics.Phone = v }),
		field("basics.url", "Web", doc.Basics.URL, func(d *model.Document, v string) { d.Basics.URL = v }),
		field("basics.summary", "Resumen", doc.Basics.Summary, func(d *model.Document, v string) { d.Basics.Summary = v }),
		field("basics.location.city", "Ciudad", doc.Basics.Location.City, func(d *model.Document, v string) { d.Basics.Location.City = v }),
		field("basics.location.region", "Región", doc.Basics.Location.Region, func(d *model.Document, v string) { d.Basics.Location.Region = v }),
	)

	// Redes sociales
	rows = append(rows, row{
		kind: rowSection, id: "hdr:profiles", label: "Redes",
		addRef: editor.List(editor.SectionProfiles), hasAdd: true,
	})
	for i := range doc.Basics.Profiles {
		i := i
		p := doc.Basics.Profiles[i]
		prefix := "basics.profiles." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionProfiles)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionProfiles)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".network", "Red", p.Network, func(d *model.Document, v string) { d.Basics.Profiles[i].Network = v })),
			entry(field(prefix+".username", "Usuario", p.Username, func(d *model.Document, v string) { d.Basics.Profiles[i].Username = v })),
			entry(field(prefix+".url", "URL", p.URL, func(d *model.Document, v string) { d.Basics.Profiles[i].URL = v })),
		)
	}

	// Experiencia laboral
	rows = append(rows, row{
		kind: rowSection, id: "hdr:work", label: "Experiencia Laboral",
		addRef: editor.List(editor.SectionWork), hasAdd: true,
	})
	for i := range doc.Work {
		i := i
		w := doc.Work[i]
		prefix := "work." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionWork)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionWork)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".position", "Puesto", w.Position, func(d *model.Document, v string) { d.Work[i].Position = v })),
			entry(field(prefix+".name", "Empresa", w.Name, func(d *model.Document, v string) { d.Work[i].Name = v })),
			entry(field(prefix+".startDate", "Desde", w.StartDate, func(d *model.Document, v string) { d.Work[i].StartDate = v })),
			entry(field(prefix+".endDate", "Hasta", w.EndDate, func(d *model.Document, v string) { d.Work[i].EndDate = v })),
			entry(field(prefix+".summary", "Resumen", w.Summary, func(d *model.Document, v string) { d.Work[i].Summary = v })),
		)

		highlights := editor.NestedList(editor.SectionWork, i, editor.SectionHighlights)
		rows = append(rows, row{
			kind: rowSection, id: prefix + ".highlights", label: "  Logros",
			addRef: highlights, hasAdd: true,
			removeRef: editor.List(editor.SectionWork), removeIdx: i, removable: true,
		})
		for j := range w.Highlights {
			j := j
			r := field(prefix+".highlights."+strconv.Itoa(j), "•", w.Highlights[j], func(d *model.Document, v string) { d.Work[i].Highlights[j] = v })
			r.addRef = highlights
			r.hasAdd = true
			r.removeRef = highlights
			r.removeIdx = j
			r.removable = true
			rows = append(rows, r)
		}
	}

	// Educación
	rows = append(rows, row{
		kind: rowSection, id: "hdr:education", label: "Educación",
		addRef: editor.List(editor.SectionEducation), hasAdd: true,
	})
	for i := range doc.Education {
		i := i
		e := doc.Education[i]
		prefix := "education." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionEducation)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionEducation)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".institution", "Centro", e.Institution, func(d *model.Document, v string) { d.Education[i].Institution = v })),
			entry(field(prefix+".area", "Área", e.Area, func(d *model.Document, v string) { d.Education[i].Area = v })),
			entry(field(prefix+".studyType", "Título", e.StudyType, func(d *model.Document, v string) { d.Education[i].StudyType = v })),
			entry(field(prefix+".startDate", "Desde", e.StartDate, func(d *model.Document, v string) { d.Education[i].StartDate = v })),
			entry(field(prefix+".endDate", "Hasta", e.EndDate, func(d *model.Document, v string) { d.Education[i].EndDate = v })),
			entry(field(prefix+".score", "Calificación", e.Score, func(d *model.Document, v string) { d.Education[i].Score = v })),
		)

		courses := editor.NestedList(editor.SectionEducation, i, editor.SectionCourses)
		rows = append(rows, row{
			kind: rowSection, id: prefix + ".courses", label: "  Cursos",
			addRef: courses, hasAdd: true,
			removeRef: editor.List(editor.SectionEducation), removeIdx: i, removable: true,
		})
		for j := range e.Courses {
			j := j
			r := field(prefix+".courses."+strconv.Itoa(j), "•", e.Courses[j], func(d *model.Document, v string) { d.Education[i].Courses[j] = v })
			r.addRef = courses
			r.hasAdd = true
			r.removeRef = courses
			r.removeIdx = j
			r.removable = true
			rows = append(rows, r)
		}
	}

	// Habilidades
	rows = append(rows, row{
		kind: rowSection, id: "hdr:skills", label: "Habilidades",
		addRef: editor.List(editor.SectionSkills), hasAdd: true,
	})
	for i := range doc.Skills {
		i := i
		s := doc.Skills[i]
		prefix := "skills." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionSkills)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionSkills)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".name", "Nombre", s.Name, func(d *model.Document, v string) { d.Skills[i].Name = v })),
			entry(field(prefix+".level", "Nivel", s.Level, func(d *model.Document, v string) { d.Skills[i].Level = v })),
			entry(field(prefix+".keywords", "Palabras clave", strings.Join(s.Keywords, ", "), func(d *model.Document, v string) {
				d.Skills[i].Keywords = splitKeywords(v)
			})),
		)
	}

	// Idiomas
	rows = append(rows, row{
		kind: rowSection, id: "hdr:languages", label: "Idiomas",
		addRef: editor.List(editor.SectionLanguages), hasAdd: true,
	})
	for i := range doc.Languages {
		i := i
		l := doc.Languages[i]
		prefix := "languages." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionLanguages)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionLanguages)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".language", "Idioma", l.Language, func(d *model.Document, v string) { d.Languages[i].Language = v })),
			entry(field(prefix+".fluency", "Nivel", l.Fluency, func(d *model.Document, v string) { d.Languages[i].Fluency = v })),
		)
	}

	// Certificaciones
	rows = append(rows, row{
		kind: rowSection, id: "hdr:certificates", label: "Certificaciones",
		addRef: editor.List(editor.SectionCertificates), hasAdd: true,
	})
	for i := range doc.Certificates {
		i := i
		c := doc.Certificates[i]
		prefix := "certificates." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionCertificates)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionCertificates)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".name", "Nombre", c.Name, func(d *model.Document, v string) { d.Certificates[i].Name = v })),
			entry(field(prefix+".date", "Fecha", c.Date, func(d *model.Document, v string) { d.Certificates[i].Date = v })),
			entry(field(prefix+".issuer", "Emisor", c.Issuer, func(d *model.Document, v string) { d.Certificates[i].Issuer = v })),
			entry(field(prefix+".url", "URL", c.URL, func(d *model.Document, v string) { d.Certificates[i].URL = v })),
		)
	}

	// Intereses
	rows = append(rows, row{
		kind: rowSection, id: "hdr:interests", label: "Intereses",
		addRef: editor.List(editor.SectionInterests), hasAdd: true,
	})
	for i := range doc.Interests {
		i := i
		in := doc.Interests[i]
		prefix := "interests." + strconv.Itoa(i)
		entry := func(r row) row {
			r.addRef = editor.List(editor.SectionInterests)
			r.hasAdd = true
			r.removeRef = editor.List(editor.SectionInterests)
			r.removeIdx = i
			r.removable = true
			return r
		}
		rows = append(rows,
			entry(field(prefix+".name", "Nombre", in.Name, func(d *model.Document, v string) { d.Interests[i].Name = v })),
			entry(field(prefix+".keywords", "Palabras clave", strings.Join(in.Keywords, ", "), func(d *model.Document, v string) {
				d.Interests[i].Keywords = splitKeywords(v)
			})),
		)
	}

	return rows
}

// splitKeywords parses a comma-separated keyword list, dropping empties.
func splitKeywords(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
