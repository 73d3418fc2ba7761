package store

import (
	"path/filepath"
	"sync"

	"calcbox/internal/domain"
)

const preferencesFile = "preferences.json"

// PreferenceFileStore persists user preferences to a JSON file under dir.
type PreferenceFileStore struct {
	dir string
	mu  sync.Mutex
}

var _ domain.PreferenceStore = (*PreferenceFileStore)(nil)

// NewPreferenceFileStore returns a PreferenceFileStore rooted at dir.
func NewPreferenceFileStore(dir string) *PreferenceFileStore {
	return &PreferenceFileStore{dir: dir}
}

// Path is the preferences file location.
func (s *PreferenceFileStore) Path() string { return filepath.Join(s.dir, preferencesFile) }

// LoadPreferences returns the stored preferences, or the zero value when
// nothing has been saved yet.
func (s *PreferenceFileStore) LoadPreferences() (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefs domain.Preferences
	if err := readJSON(s.Path(), &prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// SavePreferences replaces the stored preferences.
func (s *PreferenceFileStore) SavePreferences(prefs domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.Path(), prefs, 0o600)
}

// MemoryPreferences keeps preferences in memory; used when no home
// directory is configured.
type MemoryPreferences struct {
	mu    sync.Mutex
	prefs domain.Preferences
}

var _ domain.PreferenceStore = (*MemoryPreferences)(nil)

func (m *MemoryPreferences) LoadPreferences() (domain.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefs, nil
}

func (m *MemoryPreferences) SavePreferences(prefs domain.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = prefs
	return nil
}
