package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store reads and writes the settings file at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory holding the settings file.
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Exists reports whether the settings file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Init writes the default settings. An existing file is only replaced when force is set.
func (s *Store) Init(force bool) error {
	if !force && s.Exists() {
		return fmt.Errorf("settings already exist at %s (use --force to overwrite)", s.path)
	}
	return s.Save(Default())
}

// Load reads the settings file. A missing file yields the defaults.
func (s *Store) Load() (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return settings, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := applyYAML(&settings, fileData); err != nil {
		return Default(), err
	}
	return settings, nil
}

// Save writes settings to the file, creating its directory if needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(s.Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(toYAML(settings))
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
