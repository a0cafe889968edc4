// iCV Lite - Terminal résumé editor
// A TUI for authoring, previewing and exporting JSON résumés.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcalaglez/icv-lite/internal/app"
	"github.com/rcalaglez/icv-lite/internal/importer"
	"github.com/rcalaglez/icv-lite/internal/notify"
	"github.com/rcalaglez/icv-lite/internal/store"
	"github.com/rcalaglez/icv-lite/internal/ui"
)

const (
	appName    = "iCV Lite"
	appVersion = "0.1.0"
)

func main() {
	configDir, err := getConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
		os.Exit(1)
	}

	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(configDir)
	defer closeLog()

	s := store.NewJSONStore(configDir, logger)
	svc := importer.NewService()
	notifier := notify.NewDispatcher(config.DesktopNotifications)

	application := ui.New(s, svc, notifier, config, configDir, logger)

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to a file in the config directory.
// Stdout belongs to the TUI.
func newLogger(configDir string) (*slog.Logger, func()) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	f, err := os.OpenFile(filepath.Join(configDir, "icv-lite.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Info("starting", "app", appName, "version", appVersion)
	return logger, func() { _ = f.Close() }
}

// getConfigDir returns the iCV Lite configuration directory.
func getConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "icv-lite"), nil
}
