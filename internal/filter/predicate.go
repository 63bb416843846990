package filter

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

// Reasons passed to a MalformedHook
const (
	ReasonUnknownField    = "unknown field"
	ReasonUnknownOperator = "unknown operator"
	ReasonBadNumber       = "operand is not a number"
	ReasonBadDate         = "operand is not a date"
	ReasonBadRecordDate   = "record value is not a date"
)

// Predicate is the boolean function one condition compiles to.
type Predicate[T any] func(rec T) bool

// MalformedHook is told about conditions that could not be evaluated as
// written and were resolved to a default instead.
type MalformedHook func(cond models.FilterCondition, reason string)

// Option configures an Evaluator
type Option func(*options)

type options struct {
	logger      *zap.Logger
	onMalformed MalformedHook
}

// WithLogger sets the logger used by the default malformed-condition hook.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMalformedHook replaces the default malformed-condition hook.
func WithMalformedHook(h MalformedHook) Option {
	return func(o *options) { o.onMalformed = h }
}

// Evaluator compiles conditions against a schema and applies them to records.
// Evaluation is total: no condition makes it fail.
type Evaluator[T any] struct {
	schema      *schema.Schema[T]
	onMalformed MalformedHook
}

// NewEvaluator creates an evaluator for records described by s.
func NewEvaluator[T any](s *schema.Schema[T], opts ...Option) *Evaluator[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onMalformed == nil {
		o.onMalformed = loggingHook(o.logger)
	}
	return &Evaluator[T]{schema: s, onMalformed: o.onMalformed}
}

// loggingHook warns once per condition and reason.
func loggingHook(logger *zap.Logger) MalformedHook {
	if logger == nil {
		logger = zap.NewNop()
	}
	var seen sync.Map
	return func(cond models.FilterCondition, reason string) {
		if _, dup := seen.LoadOrStore(cond.ID+"\x00"+cond.Value+"\x00"+reason, struct{}{}); dup {
			return
		}
		logger.Warn("Malformed filter condition resolved to default",
			zap.String("id", cond.ID),
			zap.String("field", cond.Field),
			zap.String("operator", string(cond.Operator)),
			zap.String("value", cond.Value),
			zap.String("reason", reason))
	}
}

// Schema returns the schema conditions are resolved against.
func (e *Evaluator[T]) Schema() *schema.Schema[T] {
	return e.schema
}

// Evaluate reports whether rec satisfies cond.
func (e *Evaluator[T]) Evaluate(cond models.FilterCondition, rec T) bool {
	return e.Compile(cond)(rec)
}

func pass[T any](T) bool { return true }
func fail[T any](T) bool { return false }

// Compile resolves the condition's field once and returns its predicate.
// Unknown fields and operators compile to a pass-through predicate.
func (e *Evaluator[T]) Compile(cond models.FilterCondition) Predicate[T] {
	field, ok := e.schema.Lookup(cond.Field)
	if !ok {
		e.onMalformed(cond, ReasonUnknownField)
		return pass[T]
	}
	get := field.Get

	switch cond.Operator {
	case models.OpIsEmpty:
		return func(rec T) bool { return schema.IsEmpty(get(rec)) }

	case models.OpIsNotEmpty:
		return func(rec T) bool { return !schema.IsEmpty(get(rec)) }

	case models.OpEquals:
		return func(rec T) bool { return schema.Stringify(get(rec)) == cond.Value }

	case models.OpContains, models.OpStartsWith, models.OpEndsWith:
		return textPredicate(get, cond.Operator, schema.Fold(cond.Value))

	case models.OpGreaterThan, models.OpLessThan:
		return e.numberPredicate(get, cond)

	case models.OpGte, models.OpLte:
		if field.Type == models.FieldNumber {
			return e.numberPredicate(get, cond)
		}
		return e.datePredicate(get, cond)

	default:
		e.onMalformed(cond, ReasonUnknownOperator)
		return pass[T]
	}
}

func textPredicate[T any](get schema.Accessor[T], op models.FilterOperator, needle string) Predicate[T] {
	match := strings.Contains
	switch op {
	case models.OpStartsWith:
		match = strings.HasPrefix
	case models.OpEndsWith:
		match = strings.HasSuffix
	}
	return func(rec T) bool {
		v := get(rec)
		if v == nil {
			return false
		}
		if list, ok := v.([]string); ok && op == models.OpContains {
			for _, item := range list {
				if strings.Contains(schema.Fold(item), needle) {
					return true
				}
			}
			return false
		}
		return match(schema.Fold(schema.Stringify(v)), needle)
	}
}

// numberPredicate fails closed: an unparseable operand or record value
// excludes the record.
func (e *Evaluator[T]) numberPredicate(get schema.Accessor[T], cond models.FilterCondition) Predicate[T] {
	operand, ok := schema.Float(cond.Value)
	if !ok {
		e.onMalformed(cond, ReasonBadNumber)
		return fail[T]
	}
	var cmp func(v float64) bool
	switch cond.Operator {
	case models.OpGreaterThan:
		cmp = func(v float64) bool { return v > operand }
	case models.OpLessThan:
		cmp = func(v float64) bool { return v < operand }
	case models.OpGte:
		cmp = func(v float64) bool { return v >= operand }
	default:
		cmp = func(v float64) bool { return v <= operand }
	}
	return func(rec T) bool {
		v, ok := schema.Float(get(rec))
		return ok && cmp(v)
	}
}

// datePredicate fails open: an unparseable date on either side keeps the
// record.
func (e *Evaluator[T]) datePredicate(get schema.Accessor[T], cond models.FilterCondition) Predicate[T] {
	operand, ok := schema.Time(cond.Value)
	if !ok {
		e.onMalformed(cond, ReasonBadDate)
		return pass[T]
	}
	after := cond.Operator == models.OpGte
	return func(rec T) bool {
		v, ok := schema.Time(get(rec))
		if !ok {
			e.onMalformed(cond, ReasonBadRecordDate)
			return true
		}
		if after {
			return !v.Before(operand)
		}
		return !v.After(operand)
	}
}
