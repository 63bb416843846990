package filter

import "github.com/zaibi326/crm-success-hub-sub000/internal/models"

// Apply keeps the records that satisfy every active condition, preserving
// order. Inactive conditions are never evaluated.
func (e *Evaluator[T]) Apply(records []T, conds []models.FilterCondition) []T {
	preds := make([]Predicate[T], 0, len(conds))
	for _, c := range conds {
		if !c.IsActive() {
			continue
		}
		preds = append(preds, e.Compile(c))
	}
	if len(preds) == 0 {
		return records
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matchesAll(preds, rec) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesAll[T any](preds []Predicate[T], rec T) bool {
	for _, p := range preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// ActiveCount is the number of conditions currently restricting results.
func ActiveCount(conds []models.FilterCondition) int {
	n := 0
	for _, c := range conds {
		if c.IsActive() {
			n++
		}
	}
	return n
}
