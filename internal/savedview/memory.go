package savedview

import "github.com/zaibi326/crm-success-hub-sub000/internal/models"

// MemoryPort keeps saved views in process memory.
type MemoryPort struct {
	filters  []models.SavedFilter
	persists int
}

// NewMemoryPort creates a port pre-populated with filters.
func NewMemoryPort(filters ...models.SavedFilter) *MemoryPort {
	return &MemoryPort{filters: copyAll(filters)}
}

func (p *MemoryPort) Load() ([]models.SavedFilter, error) {
	return copyAll(p.filters), nil
}

func (p *MemoryPort) Persist(filters []models.SavedFilter) error {
	p.filters = copyAll(filters)
	p.persists++
	return nil
}

func copyAll(filters []models.SavedFilter) []models.SavedFilter {
	out := make([]models.SavedFilter, len(filters))
	for i, f := range filters {
		out[i] = clone(f)
	}
	return out
}
