package savedview

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

// YAMLPort stores saved views as a YAML list in a single file.
type YAMLPort struct {
	path string
}

// NewYAMLPort creates a port backed by path. The file is created on first write.
func NewYAMLPort(path string) *YAMLPort {
	return &YAMLPort{path: path}
}

// Load loads saved views from the YAML file
func (p *YAMLPort) Load() ([]models.SavedFilter, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved views file: %w", err)
	}

	var filters []models.SavedFilter
	if err := yaml.Unmarshal(data, &filters); err != nil {
		return nil, fmt.Errorf("failed to parse saved views: %w", err)
	}

	return filters, nil
}

// Persist writes saved views to the YAML file
func (p *YAMLPort) Persist(filters []models.SavedFilter) error {
	data, err := yaml.Marshal(filters)
	if err != nil {
		return fmt.Errorf("failed to marshal saved views: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(p.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write saved views file: %w", err)
	}

	return nil
}
