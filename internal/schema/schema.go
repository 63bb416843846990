// Package schema describes the filterable, searchable and sortable fields of
// a record type. Each field carries a typed accessor, so conditions resolve
// their field once instead of looking values up by name per record.
package schema

import (
	"errors"
	"fmt"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

var ErrDuplicateField = errors.New("duplicate field key")

// Accessor reads one field from a record. It returns nil when the value is
// missing.
type Accessor[T any] func(rec T) any

// Field describes one filterable field of T
type Field[T any] struct {
	Key        string
	Label      string
	Type       models.FieldType
	Searchable bool
	Sortable   bool
	Get        Accessor[T]
}

// Schema is an ordered, immutable set of fields
type Schema[T any] struct {
	fields []Field[T]
	byKey  map[string]int
}

// New builds a schema. Keys must be unique and every field needs an accessor.
func New[T any](fields ...Field[T]) (*Schema[T], error) {
	s := &Schema[T]{
		fields: make([]Field[T], 0, len(fields)),
		byKey:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Key == "" {
			return nil, fmt.Errorf("field key cannot be empty")
		}
		if f.Get == nil {
			return nil, fmt.Errorf("field %q has no accessor", f.Key)
		}
		if _, exists := s.byKey[f.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Key)
		}
		if f.Label == "" {
			f.Label = f.Key
		}
		s.byKey[f.Key] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustNew is New for statically declared schemas.
func MustNew[T any](fields ...Field[T]) *Schema[T] {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the field registered under key.
func (s *Schema[T]) Lookup(key string) (Field[T], bool) {
	i, ok := s.byKey[key]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// Fields returns all fields in registration order.
func (s *Schema[T]) Fields() []Field[T] {
	out := make([]Field[T], len(s.fields))
	copy(out, s.fields)
	return out
}

// SearchFields returns the keys of fields flagged as searchable.
func (s *Schema[T]) SearchFields() []string {
	var keys []string
	for _, f := range s.fields {
		if f.Searchable {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// SortFields returns the keys of fields flagged as sortable.
func (s *Schema[T]) SortFields() []string {
	var keys []string
	for _, f := range s.fields {
		if f.Sortable {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Accessors resolves keys to accessors, skipping keys that are not registered.
func (s *Schema[T]) Accessors(keys []string) []Accessor[T] {
	out := make([]Accessor[T], 0, len(keys))
	for _, k := range keys {
		if f, ok := s.Lookup(k); ok {
			out = append(out, f.Get)
		}
	}
	return out
}
