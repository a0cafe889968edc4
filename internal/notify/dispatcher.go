// Package notify surfaces editor outcomes as desktop notifications.
package notify

import (
	"strings"

	"github.com/gen2brain/beeep"
)

// EventType represents a notification event type.
type EventType string

const (
	EventProfileSaved    EventType = "profile_saved"
	EventImportCompleted EventType = "import_completed"
	EventImportFailed    EventType = "import_failed"
	EventExportCompleted EventType = "export_completed"
)

// Event describes a notification event.
type Event struct {
	ProfileName string
	Type        EventType
	Title       string
	Message     string
}

// Dispatcher sends notifications to the desktop channel when enabled.
type Dispatcher struct {
	desktop bool
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(desktop bool) *Dispatcher {
	return &Dispatcher{desktop: desktop}
}

// Dispatch sends a notification event. Delivery is best-effort; failures
// are ignored.
func (d *Dispatcher) Dispatch(event Event) {
	if !d.desktop {
		return
	}

	title := strings.TrimSpace(event.Title)
	if title == "" {
		if event.ProfileName != "" {
			title = event.ProfileName
		} else {
			title = "iCV Lite"
		}
	}
	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	message = truncateMessage(message, maxMessageRunes)

	_ = beeep.Notify(title, message, "")
}

const maxMessageRunes = 800

// truncateMessage bounds a message at a rune boundary so multibyte
// characters are never split.
func truncateMessage(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
