package models

import (
	"strings"
	"time"
)

// FilterOperator represents a filter comparison operator
type FilterOperator string

const (
	OpEquals      FilterOperator = "equals"
	OpContains    FilterOperator = "contains"
	OpStartsWith  FilterOperator = "starts_with"
	OpEndsWith    FilterOperator = "ends_with"
	OpGreaterThan FilterOperator = "greater_than"
	OpLessThan    FilterOperator = "less_than"
	OpIsEmpty     FilterOperator = "is_empty"
	OpIsNotEmpty  FilterOperator = "is_not_empty"
	OpGte         FilterOperator = "gte"
	OpLte         FilterOperator = "lte"
)

// Operators lists every operator the evaluator understands.
var Operators = []FilterOperator{
	OpEquals, OpContains, OpStartsWith, OpEndsWith,
	OpGreaterThan, OpLessThan, OpIsEmpty, OpIsNotEmpty,
	OpGte, OpLte,
}

// IsKnown reports whether op is one of the defined operators.
func (op FilterOperator) IsKnown() bool {
	for _, known := range Operators {
		if op == known {
			return true
		}
	}
	return false
}

// NeedsValue reports whether the operator takes an operand.
func (op FilterOperator) NeedsValue() bool {
	return op != OpIsEmpty && op != OpIsNotEmpty
}

// Display returns the human-readable form used in condition labels.
func (op FilterOperator) Display() string {
	switch op {
	case OpStartsWith:
		return "starts with"
	case OpEndsWith:
		return "ends with"
	case OpGreaterThan:
		return "greater than"
	case OpLessThan:
		return "less than"
	case OpIsEmpty:
		return "is empty"
	case OpIsNotEmpty:
		return "is not empty"
	case OpGte:
		return "from"
	case OpLte:
		return "up to"
	default:
		return string(op)
	}
}

// FieldType is the declared value type of a filterable field
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
	FieldEnum   FieldType = "enum"
	FieldMulti  FieldType = "multi"
)

// FilterCondition represents a single filter condition
type FilterCondition struct {
	ID       string         `json:"id" yaml:"id"`
	Field    string         `json:"field" yaml:"field"`
	Operator FilterOperator `json:"operator" yaml:"operator"`
	Value    string         `json:"value" yaml:"value"`
	Label    string         `json:"label" yaml:"label"`
}

// IsActive reports whether the condition restricts results. A row with a
// blank operand is "not yet configured" unless its operator takes no operand.
func (c FilterCondition) IsActive() bool {
	if !c.Operator.NeedsValue() {
		return true
	}
	return strings.TrimSpace(c.Value) != ""
}

// SavedFilter is a named, persisted list of conditions
type SavedFilter struct {
	ID        string            `json:"id" yaml:"id"`
	Name      string            `json:"name" yaml:"name"`
	Filters   []FilterCondition `json:"filters" yaml:"filters"`
	CreatedAt time.Time         `json:"createdAt" yaml:"created_at"`
}

// CloneConditions returns a copy of conds that shares no backing array.
func CloneConditions(conds []FilterCondition) []FilterCondition {
	if conds == nil {
		return nil
	}
	out := make([]FilterCondition, len(conds))
	copy(out, conds)
	return out
}
