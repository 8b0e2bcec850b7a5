package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/formline/formline-terminal/pkg/models"
)

const SettingsFile = "settings.yaml"

// ReadSettings loads settings.yaml from the project directory. A missing
// file yields the defaults.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(FormlineDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return settings, nil
}

// WriteSettings persists settings.yaml to the project directory.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(FormlineDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", FormlineDir, err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(FormlineDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Open returns the store selected by settings. The sqlite backend keeps
// everything in a single formline.db; the json backend uses the two flat
// collection files.
func Open(settings *models.Settings) (Store, error) {
	ids := NewIDSource(settings.Storage.IDFormat)
	switch settings.Storage.Backend {
	case "", "json":
		return NewJSONStore("", ids), nil
	case "sqlite":
		return OpenSQLiteStore(filepath.Join(FormlineDir, DBFile), ids)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", settings.Storage.Backend)
	}
}
