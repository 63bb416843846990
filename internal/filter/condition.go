package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

var (
	ErrUnknownField    = errors.New("unknown filter field")
	ErrInvalidOperator = errors.New("operator not valid for field type")
)

// NewCondition builds a condition, checking that the field exists and the
// operator suits its type. A blank value is allowed and leaves the condition
// inactive until it is filled in.
func NewCondition[T any](s *schema.Schema[T], field string, op models.FilterOperator, value string) (models.FilterCondition, error) {
	f, ok := s.Lookup(field)
	if !ok {
		return models.FilterCondition{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if !schema.AllowsOperator(f.Type, op) {
		return models.FilterCondition{}, fmt.Errorf("%w: %s on %s field %s", ErrInvalidOperator, op, f.Type, field)
	}
	if !op.NeedsValue() {
		value = ""
	}
	return models.FilterCondition{
		ID:       uuid.New().String(),
		Field:    f.Key,
		Operator: op,
		Value:    value,
		Label:    Label(f.Label, op, value),
	}, nil
}

// WithValue returns a copy of cond carrying value, with its label refreshed.
func WithValue[T any](s *schema.Schema[T], cond models.FilterCondition, value string) models.FilterCondition {
	if !cond.Operator.NeedsValue() {
		value = ""
	}
	cond.Value = value
	label := cond.Field
	if f, ok := s.Lookup(cond.Field); ok {
		label = f.Label
	}
	cond.Label = Label(label, cond.Operator, value)
	return cond
}

// Label derives the human-readable form of a condition.
func Label(fieldLabel string, op models.FilterOperator, value string) string {
	if !op.NeedsValue() {
		return fmt.Sprintf("%s %s", fieldLabel, op.Display())
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s %s …", fieldLabel, op.Display())
	}
	return fmt.Sprintf("%s %s %s", fieldLabel, op.Display(), value)
}
