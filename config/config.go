package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// Settings is the service configuration, persisted as JSON.
type Settings struct {
	Port int `json:"port"`

	// SnapshotSource locates the catalog: an http(s) URL, a .json fixture
	// path, or a SQLite snapshot database path.
	SnapshotSource string `json:"snapshotSource"`

	// TimeZone is the default zone for program placement when a request
	// supplies none. Empty means UTC.
	TimeZone string `json:"timeZone,omitempty"`

	LogLevel  string `json:"logLevel"`
	LogFile   string `json:"logFile,omitempty"`
	SentryDSN string `json:"sentryDsn,omitempty"`
}

// DefaultSettings returns the configuration used when no settings file
// exists yet.
func DefaultSettings() Settings {
	return Settings{
		Port:           8080,
		SnapshotSource: "catalog.db",
		LogLevel:       "info",
	}
}

// Manager loads and persists settings from a JSON file.
type Manager struct {
	path string
	fs   afero.Fs
	mu   sync.RWMutex
}

// NewManager creates a manager for the given settings path.
func NewManager(path string) *Manager {
	return NewManagerWithFs(afero.NewOsFs(), path)
}

// NewManagerWithFs allows tests to inject an in-memory filesystem.
func NewManagerWithFs(fs afero.Fs, path string) *Manager {
	return &Manager{path: path, fs: fs}
}

// Load reads the settings file, creating it with defaults when missing.
// Environment variables override file values afterwards.
func (m *Manager) Load() (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	settings := DefaultSettings()
	raw, err := afero.ReadFile(m.fs, m.path)
	switch {
	case os.IsNotExist(err):
		// First run, fall through to defaults.
	case err != nil:
		return Settings{}, fmt.Errorf("read settings: %w", err)
	default:
		if err := json.Unmarshal(raw, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse settings %s: %w", m.path, err)
		}
	}

	applyEnv(&settings)
	return settings, nil
}

// Save writes the settings file, creating parent directories as needed.
func (m *Manager) Save(settings Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(m.path)
	if dir != "" && dir != "." {
		if err := m.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	raw, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := afero.WriteFile(m.fs, m.path, raw, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("SCREENFEED_SNAPSHOT"); v != "" {
		s.SnapshotSource = v
	}
	if v := os.Getenv("SCREENFEED_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		s.SentryDSN = v
	}
	if v := os.Getenv("SCREENFEED_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			s.Port = port
		}
	}
}
