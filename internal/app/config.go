// Package app provides application-level configuration.
package app

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the application configuration.
type Config struct {
	// Theme is the color theme.
	Theme string `json:"theme"`
	// DesktopNotifications enables desktop alerts for saves and imports.
	DesktopNotifications bool `json:"desktop_notifications"`
	// LastProfileID is the profile opened in the previous session.
	LastProfileID string `json:"last_profile_id,omitempty"`
	// RecentImportPaths stores recently used import/export paths for
	// completion.
	RecentImportPaths []string `json:"recent_import_paths,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:                "catppuccin-mocha",
		DesktopNotifications: true,
		RecentImportPaths:    []string{},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig loads the configuration from disk.
func LoadConfig(configDir string) (*Config, error) {
	path := ConfigPath(configDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}

// AddRecentImportPath adds a path to the recent paths list, most recent
// first, bounded and de-duplicated.
func (c *Config) AddRecentImportPath(path string) {
	path = filepath.Clean(path)

	paths := make([]string, 0, len(c.RecentImportPaths))
	for _, p := range c.RecentImportPaths {
		if p != path {
			paths = append(paths, p)
		}
	}

	c.RecentImportPaths = append([]string{path}, paths...)

	if len(c.RecentImportPaths) > 10 {
		c.RecentImportPaths = c.RecentImportPaths[:10]
	}
}
