// Package config loads and saves the user's client preferences from
// ~/.rez/config.json. Only presentation settings live here; domain data is
// never persisted.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ConfigVersion is the current schema version for config.json.
const ConfigVersion = "1.0"

// ThemeMode selects the color scheme.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto" // detect from terminal
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Config is the persisted client preferences schema.
type Config struct {
	Version string `json:"version"`

	// Theme is the preferred color scheme.
	Theme ThemeMode `json:"theme"`

	// DebugLogging enables the file logger. Off by default so normal runs
	// write nothing.
	DebugLogging bool `json:"debug_logging"`
}

// Default returns the out-of-the-box configuration.
func Default() Config {
	return Config{
		Version: ConfigVersion,
		Theme:   ThemeAuto,
	}
}

// Manager handles loading and saving the config file.
type Manager struct {
	mu   sync.RWMutex
	path string
	cfg  Config
}

// Dir returns the client state directory under the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".rez"), nil
}

// NewManager creates a manager rooted at dir. A missing config file is not
// an error; defaults apply until the first Save.
func NewManager(dir string) *Manager {
	return &Manager{
		path: filepath.Join(dir, "config.json"),
		cfg:  Default(),
	}
}

// Load reads the config file into the manager. Missing files leave the
// defaults in place.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Theme != ThemeLight && cfg.Theme != ThemeDark {
		cfg.Theme = ThemeAuto
	}
	cfg.Version = ConfigVersion
	m.cfg = cfg
	return nil
}

// Save writes the current config to disk, creating the directory if needed.
func (m *Manager) Save() error {
	m.mu.RLock()
	cfg := m.cfg
	path := m.path
	m.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Get returns a copy of the current config.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// SetTheme updates the theme preference in memory.
func (m *Manager) SetTheme(t ThemeMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg.Theme = t
}
