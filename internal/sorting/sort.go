// Package sorting orders record collections by a single schema field.
package sorting

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

// Sorter orders records ascending by one field. Text fields use the
// collation rules of the configured language; everything else compares
// numerically with missing values treated as zero.
type Sorter[T any] struct {
	schema *schema.Schema[T]

	mu       sync.Mutex // collate.Collator is not safe for concurrent use
	collator *collate.Collator
}

// NewSorter creates a sorter collating text for tag.
func NewSorter[T any](s *schema.Schema[T], tag language.Tag) *Sorter[T] {
	return &Sorter[T]{
		schema:   s,
		collator: collate.New(tag),
	}
}

// Sort returns a stably sorted copy of records. An empty or unknown field
// leaves the order unchanged.
func (s *Sorter[T]) Sort(records []T, field string) []T {
	sorted := make([]T, len(records))
	copy(sorted, records)

	f, ok := s.schema.Lookup(field)
	if !ok {
		return sorted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch f.Type {
	case models.FieldText, models.FieldEnum, models.FieldMulti:
		keys := make([]string, len(sorted))
		for i, rec := range sorted {
			keys[i] = schema.Stringify(f.Get(rec))
		}
		sortByKeys(sorted, keys, func(a, b string) bool {
			return s.collator.CompareString(a, b) < 0
		})
	default:
		keys := make([]float64, len(sorted))
		for i, rec := range sorted {
			keys[i] = numericKey(f.Get(rec))
		}
		sortByKeys(sorted, keys, func(a, b float64) bool { return a < b })
	}
	return sorted
}

// numericKey normalizes missing or unparseable values to zero, so they sort
// as if they were zero rather than last.
func numericKey(v any) float64 {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return 0
		}
		return float64(t.UnixMilli())
	}
	f, ok := schema.Float(v)
	if !ok {
		return 0
	}
	return f
}

// sortByKeys stably sorts records by precomputed keys.
func sortByKeys[T any, K any](records []T, keys []K, less func(a, b K) bool) {
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return less(keys[idx[i]], keys[idx[j]])
	})

	out := make([]T, len(records))
	for i, k := range idx {
		out[i] = records[k]
	}
	copy(records, out)
}
