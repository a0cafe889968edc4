// Package styles defines the visual appearance for the iCV Lite TUI.
// Using Catppuccin Mocha color palette for a modern, aesthetic look.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha color palette
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Yellow   = lipgloss.Color("#F9E2AF")
	Green    = lipgloss.Color("#A6E3A1")
	Teal     = lipgloss.Color("#94E2D5")
	Sapphire = lipgloss.Color("#74C7EC")
	Blue     = lipgloss.Color("#89B4FA")
	Lavender = lipgloss.Color("#B4BEFE")

	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors (using the palette)
var (
	Primary     = Mauve
	Accent      = Sapphire
	Danger      = Red
	Warning     = Peach
	Success     = Green
	Muted       = Overlay0
	SurfaceCol  = Surface0
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Base styles
var (
	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)
)

// Panel styles
var (
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)
)

// List item styles
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			Padding(0, 1)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(SurfaceCol).
				Bold(true).
				Padding(0, 1)

	ListItemDim = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)
)

// Form styles
var (
	// SectionHeader for form section titles
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	// FieldLabel for form field labels
	FieldLabel = lipgloss.NewStyle().
			Foreground(TextMuted)

	// FieldLabelSelected for the focused field label
	FieldLabelSelected = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true)

	// FieldValue for field contents
	FieldValue = lipgloss.NewStyle().
			Foreground(TextCol)

	// FieldError for inline validation messages
	FieldError = lipgloss.NewStyle().
			Foreground(Danger).
			Italic(true)

	// FieldPlaceholder for empty field hints
	FieldPlaceholder = lipgloss.NewStyle().
				Foreground(Overlay0).
				Italic(true)
)

// StatusBar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(Mantle).
			Padding(0, 1)

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Dialog styles
var (
	DialogBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			Background(SurfaceCol)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Sapphire).
			MarginBottom(1)

	DialogLabel = lipgloss.NewStyle().
			Foreground(TextMuted)

	DialogHelp = lipgloss.NewStyle().
			Foreground(Overlay0).
			MarginTop(1)
)

// Badge styles for the status bar
var (
	BadgeDirty = lipgloss.NewStyle().
			Foreground(Base).
			Background(Warning).
			Bold(true).
			Padding(0, 1)

	BadgeSaved = lipgloss.NewStyle().
			Foreground(Base).
			Background(Success).
			Bold(true).
			Padding(0, 1)

	BadgeInvalid = lipgloss.NewStyle().
			Foreground(Base).
			Background(Danger).
			Bold(true).
			Padding(0, 1)
)

// TruncateWithEllipsis truncates a string to maxLen with ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
