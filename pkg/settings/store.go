package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store persists Settings in a YAML file. Load merges the stored record over
// the built-in defaults so absent fields keep their default values.
type Store struct {
	mu       sync.RWMutex
	path     string
	current  Settings
	onChange []func(Settings)
}

// NewStore creates a store bound to path. Nothing is read until Load.
func NewStore(path string) *Store {
	return &Store{
		path:    strings.TrimSpace(path),
		current: Defaults(),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file. A missing file leaves the defaults in place.
func (s *Store) Load() (Settings, error) {
	loaded := Defaults()
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("settings: read %s: %w", s.path, err)
		default:
			if loaded, err = Decode(data); err != nil {
				return Settings{}, fmt.Errorf("settings: parse %s: %w", s.path, err)
			}
		}
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()
	return loaded, nil
}

// Current returns the settings most recently loaded or saved.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save writes settings to the backing file and notifies change listeners.
func (s *Store) Save(next Settings) error {
	if s.path != "" {
		data, err := yaml.Marshal(next)
		if err != nil {
			return fmt.Errorf("settings: encode: %w", err)
		}
		if dir := filepath.Dir(s.path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("settings: create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(s.path, data, 0o644); err != nil {
			return fmt.Errorf("settings: write %s: %w", s.path, err)
		}
	}

	s.mu.Lock()
	s.current = next
	listeners := append([]func(Settings){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return nil
}

// Reset restores and saves the built-in defaults.
func (s *Store) Reset() (Settings, error) {
	defaults := Defaults()
	if err := s.Save(defaults); err != nil {
		return Settings{}, err
	}
	return defaults, nil
}

// OnChange registers fn to run after every successful Save.
func (s *Store) OnChange(fn func(Settings)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Decode parses a YAML (or JSON) settings record over the defaults.
func Decode(data []byte) (Settings, error) {
	out := Defaults()
	if len(strings.TrimSpace(string(data))) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}
