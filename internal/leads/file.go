package leads

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

// LoadFile reads a JSON array of leads.
func LoadFile(path string) ([]models.Lead, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leads file: %w", err)
	}

	var leads []models.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse leads file: %w", err)
	}

	return leads, nil
}
