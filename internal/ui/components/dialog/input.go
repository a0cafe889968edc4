// Package dialog provides modal dialog components for iCV Lite.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcalaglez/icv-lite/internal/ui/styles"
	"github.com/rcalaglez/icv-lite/pkg/utils"
)

// Field describes a single input field in the dialog.
type Field struct {
	Label          string
	Placeholder    string
	Value          string
	EnablePathComp bool // filesystem completion for import/export paths
	Options        []string
}

// Input is a modal dialog for text input.
type Input struct {
	title       string
	inputs      []textinput.Model
	labels      []string
	pathComp    []bool
	options     [][]string
	focusIndex  int
	width       int
	height      int
	submitted   bool
	cancelled   bool

	completer       *utils.PathCompleter
	suggestions     []string
	suggestionIndex int
	showSuggestions bool
}

// NewInput creates a new input dialog.
func NewInput(title string, fields []Field, recentPaths []string) Input {
	inputs := make([]textinput.Model, len(fields))
	labels := make([]string, len(fields))
	pathComp := make([]bool, len(fields))
	options := make([][]string, len(fields))

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.SetValue(f.Value)
		ti.CharLimit = 256
		ti.Width = 40
		if i == 0 {
			ti.Focus()
			ti.CursorEnd()
		}

		inputs[i] = ti
		labels[i] = f.Label
		pathComp[i] = f.EnablePathComp
		if len(f.Options) > 0 {
			options[i] = append([]string{}, f.Options...)
		}
	}

	return Input{
		title:     title,
		inputs:    inputs,
		labels:    labels,
		pathComp:  pathComp,
		options:   options,
		completer: utils.NewPathCompleter(recentPaths),
	}
}

// SetSize updates the dialog dimensions.
func (d *Input) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Update handles input dialog messages.
func (d Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if d.showSuggestions && len(d.suggestions) > 0 {
				d.suggestionIndex = (d.suggestionIndex + 1) % len(d.suggestions)
				d.inputs[d.focusIndex].SetValue(d.suggestions[d.suggestionIndex])
				d.inputs[d.focusIndex].CursorEnd()
				return d, nil
			}
			return d.moveFocus(1)

		case "shift+tab":
			if d.showSuggestions && len(d.suggestions) > 0 {
				d.suggestionIndex--
				if d.suggestionIndex < 0 {
					d.suggestionIndex = len(d.suggestions) - 1
				}
				d.inputs[d.focusIndex].SetValue(d.suggestions[d.suggestionIndex])
				d.inputs[d.focusIndex].CursorEnd()
				return d, nil
			}
			return d.moveFocus(-1)

		case "down":
			return d.moveFocus(1)

		case "up":
			return d.moveFocus(-1)

		case "enter":
			d.submitted = true
			return d, nil

		case "esc":
			if d.showSuggestions {
				d.showSuggestions = false
				d.suggestions = nil
				return d, nil
			}
			d.cancelled = true
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.inputs[d.focusIndex], cmd = d.inputs[d.focusIndex].Update(msg)

	if d.suggestionEnabled() {
		d.updateSuggestions()
		d.showSuggestions = len(d.suggestions) > 0
	}

	return d, cmd
}

func (d Input) moveFocus(delta int) (Input, tea.Cmd) {
	d.focusIndex += delta
	if d.focusIndex >= len(d.inputs) {
		d.focusIndex = 0
	}
	if d.focusIndex < 0 {
		d.focusIndex = len(d.inputs) - 1
	}
	d.showSuggestions = false
	d.suggestions = nil

	cmds := make([]tea.Cmd, len(d.inputs))
	for i := range d.inputs {
		if i == d.focusIndex {
			cmds[i] = d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
	return d, tea.Batch(cmds...)
}

func (d *Input) updateSuggestions() {
	input := d.inputs[d.focusIndex].Value()
	switch {
	case d.pathComp[d.focusIndex]:
		d.suggestions = d.completer.Complete(input)
	case len(d.options[d.focusIndex]) > 0:
		d.suggestions = matchOptions(d.options[d.focusIndex], input)
	default:
		d.suggestions = nil
	}
	d.suggestionIndex = 0
}

// View renders the dialog.
func (d Input) View() string {
	var b strings.Builder

	b.WriteString(styles.DialogTitle.Render(d.title))
	b.WriteString("\n\n")

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Surface1).
		Padding(0, 1).
		MarginBottom(1)
	inputFocusedStyle := inputStyle.BorderForeground(styles.Primary)

	for i, input := range d.inputs {
		labelStyle := styles.DialogLabel
		boxStyle := inputStyle
		if i == d.focusIndex {
			labelStyle = styles.FieldLabelSelected
			boxStyle = inputFocusedStyle
		}

		b.WriteString(labelStyle.Render(d.labels[i]))
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(input.View()))
		b.WriteString("\n")

		if i == d.focusIndex && d.showSuggestions && len(d.suggestions) > 0 {
			suggestionStyle := lipgloss.NewStyle().
				Foreground(styles.Muted).
				PaddingLeft(2)
			selectedStyle := lipgloss.NewStyle().
				Foreground(styles.Accent).
				Bold(true).
				PaddingLeft(2)

			maxShow := 5
			if len(d.suggestions) < maxShow {
				maxShow = len(d.suggestions)
			}
			for j := 0; j < maxShow; j++ {
				if j == d.suggestionIndex {
					b.WriteString(selectedStyle.Render("→ " + d.suggestions[j]))
				} else {
					b.WriteString(suggestionStyle.Render("  " + d.suggestions[j]))
				}
				b.WriteString("\n")
			}
			if len(d.suggestions) > maxShow {
				b.WriteString(suggestionStyle.Render("  ..."))
				b.WriteString("\n")
			}
		}
	}

	helpText := "Enter: Confirmar • Esc: Cancelar"
	if d.suggestionEnabled() {
		helpText = "Tab: Sugerencias • Enter: Confirmar • Esc: Cancelar"
	}
	b.WriteString(styles.DialogHelp.Render(helpText))

	content := styles.DialogBox.Render(b.String())

	if d.width > 0 && d.height > 0 {
		padX := (d.width - lipgloss.Width(content)) / 2
		padY := (d.height - lipgloss.Height(content)) / 2
		if padX < 0 {
			padX = 0
		}
		if padY < 0 {
			padY = 0
		}
		content = lipgloss.NewStyle().
			MarginLeft(padX).
			MarginTop(padY).
			Render(content)
	}

	return content
}

// IsSubmitted returns true if the user submitted the dialog.
func (d Input) IsSubmitted() bool {
	return d.submitted
}

// IsCancelled returns true if the user cancelled the dialog.
func (d Input) IsCancelled() bool {
	return d.cancelled
}

// Value returns the value of the input at the given index.
func (d Input) Value(index int) string {
	if index < 0 || index >= len(d.inputs) {
		return ""
	}
	return d.inputs[index].Value()
}

func (d *Input) suggestionEnabled() bool {
	if d.focusIndex < 0 || d.focusIndex >= len(d.inputs) {
		return false
	}
	return d.pathComp[d.focusIndex] || len(d.options[d.focusIndex]) > 0
}

func matchOptions(opts []string, input string) []string {
	if input == "" {
		return opts
	}
	lower := strings.ToLower(input)
	var matches []string
	for _, opt := range opts {
		if strings.Contains(strings.ToLower(opt), lower) {
			matches = append(matches, opt)
		}
	}
	if len(matches) > 10 {
		matches = matches[:10]
	}
	return matches
}
