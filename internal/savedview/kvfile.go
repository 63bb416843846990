package savedview

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

// DefaultKey is the namespaced key saved views are stored under.
const DefaultKey = "crm.savedFilters"

// KVFilePort stores saved views as a JSON array under one key of a JSON
// object file. Other keys in the file are left untouched.
type KVFilePort struct {
	path string
	key  string
}

// NewKVFilePort creates a port for key in the JSON object file at path.
func NewKVFilePort(path, key string) *KVFilePort {
	if key == "" {
		key = DefaultKey
	}
	return &KVFilePort{path: path, key: key}
}

func (p *KVFilePort) readAll() (map[string]json.RawMessage, error) {
	entries := map[string]json.RawMessage{}

	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return entries, nil
}

func (p *KVFilePort) Load() ([]models.SavedFilter, error) {
	entries, err := p.readAll()
	if err != nil {
		return nil, err
	}
	raw, ok := entries[p.key]
	if !ok {
		return nil, nil
	}
	return decodeFilters(raw)
}

func (p *KVFilePort) Persist(filters []models.SavedFilter) error {
	entries, err := p.readAll()
	if err != nil {
		return err
	}

	raw, err := encodeFilters(filters)
	if err != nil {
		return err
	}
	entries[p.key] = raw

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write through a temp file and rename over the original
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

func encodeFilters(filters []models.SavedFilter) (json.RawMessage, error) {
	if filters == nil {
		filters = []models.SavedFilter{}
	}
	raw, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal saved views: %w", err)
	}
	return raw, nil
}

func decodeFilters(raw []byte) ([]models.SavedFilter, error) {
	var filters []models.SavedFilter
	if err := json.Unmarshal(raw, &filters); err != nil {
		return nil, fmt.Errorf("failed to parse saved views: %w", err)
	}
	return filters, nil
}
