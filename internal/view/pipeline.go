// Package view composes search, filtering and sorting into the visible set
// of a list view.
package view

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/zaibi326/crm-success-hub-sub000/internal/filter"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
	"github.com/zaibi326/crm-success-hub-sub000/internal/search"
	"github.com/zaibi326/crm-success-hub-sub000/internal/sorting"
)

// Inputs are everything besides the records that decides the visible set.
type Inputs struct {
	Query      string
	Conditions []models.FilterCondition
	SortField  string
}

// EngineConfig configures an Engine
type EngineConfig struct {
	SearchFields []string // empty means the schema's searchable fields
	Locale       language.Tag
	Logger       *zap.Logger
}

// Engine runs the search, filter and sort passes for one record type
type Engine[T any] struct {
	schema    *schema.Schema[T]
	evaluator *filter.Evaluator[T]
	matcher   *search.Matcher[T]
	sorter    *sorting.Sorter[T]
}

// NewEngine creates an engine for records described by s.
func NewEngine[T any](s *schema.Schema[T], cfg EngineConfig) *Engine[T] {
	if cfg.Locale == language.Und {
		cfg.Locale = language.English
	}
	return &Engine[T]{
		schema:    s,
		evaluator: filter.NewEvaluator(s, filter.WithLogger(cfg.Logger)),
		matcher:   search.NewMatcher(s, cfg.SearchFields),
		sorter:    sorting.NewSorter(s, cfg.Locale),
	}
}

// Schema returns the schema the engine was built for.
func (e *Engine[T]) Schema() *schema.Schema[T] {
	return e.schema
}

// Compute returns Sort(FilterSet(Search(all, query), conditions), sortField).
// It never fails and never modifies all.
func (e *Engine[T]) Compute(all []T, in Inputs) []T {
	found := e.matcher.Search(all, in.Query)
	filtered := e.evaluator.Apply(found, in.Conditions)
	return e.sorter.Sort(filtered, in.SortField)
}
