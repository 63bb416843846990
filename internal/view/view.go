package view

import (
	"github.com/zaibi326/crm-success-hub-sub000/internal/filter"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

// Listener is called with the new visible set after every recomputation.
type Listener[T any] func(visible []T)

// View holds the inputs of one list view and recomputes its visible set
// synchronously whenever any of them changes.
type View[T any] struct {
	engine    *Engine[T]
	all       []T
	in        Inputs
	visible   []T
	listeners []Listener[T]
}

// New creates a view over all and computes its initial visible set.
func New[T any](engine *Engine[T], all []T, in Inputs) *View[T] {
	v := &View[T]{engine: engine, all: all, in: in}
	v.in.Conditions = models.CloneConditions(in.Conditions)
	v.visible = engine.Compute(v.all, v.in)
	return v
}

// Subscribe registers l for future recomputations.
func (v *View[T]) Subscribe(l Listener[T]) {
	v.listeners = append(v.listeners, l)
}

// SetRecords replaces the record collection.
func (v *View[T]) SetRecords(all []T) {
	v.all = all
	v.recompute()
}

// OnFiltersChange installs conds as the active condition list.
func (v *View[T]) OnFiltersChange(conds []models.FilterCondition) {
	v.in.Conditions = models.CloneConditions(conds)
	v.recompute()
}

// OnSearchChange sets the free-text query.
func (v *View[T]) OnSearchChange(query string) {
	v.in.Query = query
	v.recompute()
}

// OnSortChange sets the sort field. An empty field keeps record order.
func (v *View[T]) OnSortChange(field string) {
	v.in.SortField = field
	v.recompute()
}

func (v *View[T]) recompute() {
	v.visible = v.engine.Compute(v.all, v.in)
	for _, l := range v.listeners {
		l(v.visible)
	}
}

// VisibleRecords returns the current visible set.
func (v *View[T]) VisibleRecords() []T {
	return v.visible
}

// ActiveFilterCount is the number of conditions restricting the view.
func (v *View[T]) ActiveFilterCount() int {
	return filter.ActiveCount(v.in.Conditions)
}

// Conditions returns a copy of the active condition list.
func (v *View[T]) Conditions() []models.FilterCondition {
	return models.CloneConditions(v.in.Conditions)
}

// Query returns the current free-text query as given.
func (v *View[T]) Query() string { return v.in.Query }

// SortField returns the active sort key, or "" when unsorted.
func (v *View[T]) SortField() string { return v.in.SortField }

// Total is the number of records before search and filtering.
func (v *View[T]) Total() int { return len(v.all) }
