// Package savedview keeps named filter sets that can be recalled later.
package savedview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

var (
	ErrBlankName     = errors.New("saved view name cannot be empty")
	ErrNoConditions  = errors.New("saved view needs at least one condition")
	ErrDuplicateName = errors.New("a saved view with this name already exists")
	ErrNotFound      = errors.New("saved view not found")
)

// IsValidation reports whether err rejects a save for bad input, as opposed
// to a persistence failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrBlankName) ||
		errors.Is(err, ErrNoConditions) ||
		errors.Is(err, ErrDuplicateName)
}

// Port is the storage medium behind a Store.
type Port interface {
	Load() ([]models.SavedFilter, error)
	Persist(filters []models.SavedFilter) error
}

// Store manages saved views. It is the only writer to its port.
type Store struct {
	port    Port
	filters []models.SavedFilter
	logger  *zap.Logger
	now     func() time.Time
}

// NewStore creates a store and loads the views already persisted in port.
func NewStore(port Port, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		port:   port,
		logger: logger,
		now:    time.Now,
	}

	filters, err := port.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load saved views: %w", err)
	}
	s.filters = filters

	return s, nil
}

// List returns all saved views in creation order.
func (s *Store) List() []models.SavedFilter {
	out := make([]models.SavedFilter, len(s.filters))
	for i, f := range s.filters {
		out[i] = clone(f)
	}
	return out
}

// Get returns a saved view by ID
func (s *Store) Get(id string) (models.SavedFilter, error) {
	for _, f := range s.filters {
		if f.ID == id {
			return clone(f), nil
		}
	}
	return models.SavedFilter{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Save stores conds under name.
func (s *Store) Save(name string, conds []models.FilterCondition) (models.SavedFilter, error) {
	name, err := s.validate("", name, conds)
	if err != nil {
		return models.SavedFilter{}, err
	}

	saved := models.SavedFilter{
		ID:        uuid.New().String(),
		Name:      name,
		Filters:   models.CloneConditions(conds),
		CreatedAt: s.now().UTC(),
	}

	next := append(s.List(), saved)
	if err := s.persist(next); err != nil {
		return models.SavedFilter{}, err
	}

	s.logger.Info("Saved view created", zap.String("id", saved.ID), zap.String("name", saved.Name), zap.Int("conditions", len(conds)))
	return clone(saved), nil
}

// Update replaces a saved view's name and conditions. The view is recreated
// under the same id with a fresh creation time.
func (s *Store) Update(id, name string, conds []models.FilterCondition) (models.SavedFilter, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.SavedFilter{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	name, err := s.validate(id, name, conds)
	if err != nil {
		return models.SavedFilter{}, err
	}

	replaced := models.SavedFilter{
		ID:        id,
		Name:      name,
		Filters:   models.CloneConditions(conds),
		CreatedAt: s.now().UTC(),
	}

	next := s.List()
	next = append(next[:idx], next[idx+1:]...)
	next = append(next, replaced)
	if err := s.persist(next); err != nil {
		return models.SavedFilter{}, err
	}

	s.logger.Info("Saved view updated", zap.String("id", id), zap.String("name", name))
	return clone(replaced), nil
}

// Delete removes a saved view. It reports false when id is unknown.
func (s *Store) Delete(id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := s.List()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.persist(next); err != nil {
		return false, err
	}

	s.logger.Info("Saved view deleted", zap.String("id", id))
	return true, nil
}

// Apply returns the stored condition list, to replace the active one wholesale.
func (s *Store) Apply(f models.SavedFilter) []models.FilterCondition {
	return models.CloneConditions(f.Filters)
}

// Search returns saved views whose name contains query, ignoring case.
func (s *Store) Search(query string) []models.SavedFilter {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List()
	}

	var results []models.SavedFilter
	for _, f := range s.filters {
		if strings.Contains(strings.ToLower(f.Name), query) {
			results = append(results, clone(f))
		}
	}
	return results
}

func (s *Store) validate(selfID, name string, conds []models.FilterCondition) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrBlankName
	}
	if len(conds) == 0 {
		return "", ErrNoConditions
	}

	// Names are unique case-insensitively
	for _, f := range s.filters {
		if f.ID != selfID && strings.EqualFold(f.Name, name) {
			return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	return name, nil
}

func (s *Store) indexOf(id string) int {
	for i, f := range s.filters {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// persist writes next through the port and adopts it only on success.
func (s *Store) persist(next []models.SavedFilter) error {
	if err := s.port.Persist(next); err != nil {
		return fmt.Errorf("failed to persist saved views: %w", err)
	}
	s.filters = next
	return nil
}

func clone(f models.SavedFilter) models.SavedFilter {
	f.Filters = models.CloneConditions(f.Filters)
	return f
}
