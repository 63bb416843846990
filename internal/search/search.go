// Package search implements the free-text pass over a record collection.
package search

import (
	"strings"

	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

// Matcher matches free text against a fixed set of fields
type Matcher[T any] struct {
	accessors []schema.Accessor[T]
}

// NewMatcher resolves fields against s. With no fields it uses the fields
// flagged searchable in the schema. Unknown keys are ignored.
func NewMatcher[T any](s *schema.Schema[T], fields []string) *Matcher[T] {
	if len(fields) == 0 {
		fields = s.SearchFields()
	}
	return &Matcher[T]{accessors: s.Accessors(fields)}
}

// Match reports whether any field of rec contains query, ignoring case.
// A blank query matches everything.
func (m *Matcher[T]) Match(rec T, query string) bool {
	needle := normalize(query)
	if needle == "" {
		return true
	}
	return m.match(rec, needle)
}

func (m *Matcher[T]) match(rec T, needle string) bool {
	for _, get := range m.accessors {
		v := get(rec)
		if v == nil {
			continue
		}
		if strings.Contains(schema.Fold(schema.Stringify(v)), needle) {
			return true
		}
	}
	return false
}

// Search keeps the records matching query, preserving order.
func (m *Matcher[T]) Search(records []T, query string) []T {
	needle := normalize(query)
	if needle == "" {
		return records
	}

	var results []T
	for _, rec := range records {
		if m.match(rec, needle) {
			results = append(results, rec)
		}
	}
	return results
}

// normalize folds query for matching. Whitespace-only queries become "";
// otherwise surrounding spaces are kept and must match too.
func normalize(query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return schema.Fold(query)
}

// Search is a one-shot form of Matcher.Search.
func Search[T any](s *schema.Schema[T], records []T, query string, fields []string) []T {
	return NewMatcher(s, fields).Search(records, query)
}
