package filter

import (
	"fmt"
	"strings"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

// FilterState is the named-field form of a lead filter. It carries no
// predicate logic of its own: Builder compiles it to a condition list.
type FilterState struct {
	LeadStatus     string   `json:"leadStatus,omitempty" yaml:"lead_status,omitempty"`
	CreatedBy      string   `json:"createdBy,omitempty" yaml:"created_by,omitempty"`
	SellerContact  string   `json:"sellerContact,omitempty" yaml:"seller_contact,omitempty"`
	County         string   `json:"county,omitempty" yaml:"county,omitempty"`
	CreatedOnStart string   `json:"createdOnStart,omitempty" yaml:"created_on_start,omitempty"`
	CreatedOnEnd   string   `json:"createdOnEnd,omitempty" yaml:"created_on_end,omitempty"`
	MinArrears     string   `json:"minArrears,omitempty" yaml:"min_arrears,omitempty"`
	MaxArrears     string   `json:"maxArrears,omitempty" yaml:"max_arrears,omitempty"`
	Tags           []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// IsEmpty reports whether no field is set. An empty state matches every record.
func (fs FilterState) IsEmpty() bool {
	return len(fs.entries()) == 0
}

type stateEntry struct {
	id    string
	field string
	op    models.FilterOperator
	value string
}

func (fs FilterState) entries() []stateEntry {
	var out []stateEntry
	add := func(name, field string, op models.FilterOperator, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		out = append(out, stateEntry{id: "state:" + name, field: field, op: op, value: value})
	}

	add("leadStatus", models.FieldStatus, models.OpEquals, fs.LeadStatus)
	add("createdBy", models.FieldCreatedBy, models.OpEquals, fs.CreatedBy)
	add("sellerContact", models.FieldSellerContact, models.OpContains, fs.SellerContact)
	add("county", models.FieldCounty, models.OpEquals, fs.County)
	add("createdOnStart", models.FieldCreatedAt, models.OpGte, fs.CreatedOnStart)
	add("createdOnEnd", models.FieldCreatedAt, models.OpLte, fs.CreatedOnEnd)
	add("minArrears", models.FieldCurrentArrears, models.OpGte, fs.MinArrears)
	add("maxArrears", models.FieldCurrentArrears, models.OpLte, fs.MaxArrears)
	for i, tag := range fs.Tags {
		add(fmt.Sprintf("tags:%d", i), models.FieldTags, models.OpContains, tag)
	}
	return out
}

// Builder compiles FilterState values into condition lists
type Builder[T any] struct {
	schema *schema.Schema[T]
}

// NewBuilder creates a new filter state builder
func NewBuilder[T any](s *schema.Schema[T]) *Builder[T] {
	return &Builder[T]{schema: s}
}

// Build compiles fs to conditions with deterministic ids, so building the
// same state twice yields equal lists.
func (b *Builder[T]) Build(fs FilterState) []models.FilterCondition {
	entries := fs.entries()
	conds := make([]models.FilterCondition, 0, len(entries))
	for _, e := range entries {
		label := e.field
		if f, ok := b.schema.Lookup(e.field); ok {
			label = f.Label
		}
		conds = append(conds, models.FilterCondition{
			ID:       e.id,
			Field:    e.field,
			Operator: e.op,
			Value:    e.value,
			Label:    Label(label, e.op, e.value),
		})
	}
	return conds
}

// ActiveCount is the number of conditions fs contributes.
func (fs FilterState) ActiveCount() int {
	return len(fs.entries())
}
