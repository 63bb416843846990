// Package query reads CRM leads out of PostgreSQL.
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spf13/cast"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

// Querier runs a query and returns rows keyed by column name.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]map[string]any, error)
}

// Column names in the leads table, by lead field.
var columns = []struct {
	name string
	set  func(l *models.Lead, v any) error
}{
	{"id", func(l *models.Lead, v any) (err error) { l.ID, err = toString(v); return }},
	{"owner_name", func(l *models.Lead, v any) (err error) { l.OwnerName, err = toString(v); return }},
	{"property_address", func(l *models.Lead, v any) (err error) { l.PropertyAddress, err = toString(v); return }},
	{"tax_id", func(l *models.Lead, v any) (err error) { l.TaxID, err = toString(v); return }},
	{"email", func(l *models.Lead, v any) (err error) { l.Email, err = toString(v); return }},
	{"phone", func(l *models.Lead, v any) (err error) { l.Phone, err = toString(v); return }},
	{"status", func(l *models.Lead, v any) (err error) { l.Status, err = toString(v); return }},
	{"county", func(l *models.Lead, v any) (err error) { l.County, err = toString(v); return }},
	{"current_arrears", func(l *models.Lead, v any) (err error) { l.CurrentArrears, err = toFloat(v); return }},
	{"tax_lawsuit_number", func(l *models.Lead, v any) (err error) { l.TaxLawsuitNumber, err = toString(v); return }},
	{"created_by", func(l *models.Lead, v any) (err error) { l.CreatedBy, err = toString(v); return }},
	{"seller_contact", func(l *models.Lead, v any) (err error) { l.SellerContact, err = toString(v); return }},
	{"tags", func(l *models.Lead, v any) (err error) { l.Tags, err = toStrings(v); return }},
	{"created_at", func(l *models.Lead, v any) (err error) { l.CreatedAt, err = toTime(v); return }},
	{"updated_at", func(l *models.Lead, v any) (err error) { l.UpdatedAt, err = toTime(v); return }},
}

// SelectSQL returns the statement that loads every lead from table, which
// may be schema-qualified.
func SelectSQL(table string) string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = pgx.Identifier{c.name}.Sanitize()
	}
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", strings.Join(names, ", "), ident, names[0])
}

// LoadLeads reads all leads from table.
func LoadLeads(ctx context.Context, q Querier, table string) ([]models.Lead, error) {
	rows, err := q.Query(ctx, SelectSQL(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}

	leads := make([]models.Lead, 0, len(rows))
	for i, row := range rows {
		lead, err := LeadFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// LeadFromRow converts a row keyed by column name. Absent or NULL columns
// leave the field unset.
func LeadFromRow(row map[string]any) (models.Lead, error) {
	var lead models.Lead
	for _, c := range columns {
		v, ok := row[c.name]
		if !ok || v == nil {
			continue
		}
		if err := c.set(&lead, v); err != nil {
			return models.Lead{}, fmt.Errorf("column %s: %w", c.name, err)
		}
	}
	return lead, nil
}

func toString(v any) (string, error) {
	switch val := v.(type) {
	case [16]byte:
		return uuid.UUID(val).String(), nil
	case []byte:
		return string(val), nil
	}
	return cast.ToStringE(v)
}

func toFloat(v any) (*float64, error) {
	var f float64
	switch val := v.(type) {
	case pgtype.Numeric:
		if !val.Valid {
			return nil, nil
		}
		f8, err := val.Float64Value()
		if err != nil {
			return nil, err
		}
		f = f8.Float64
	default:
		var err error
		if f, err = cast.ToFloat64E(v); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func toStrings(v any) ([]string, error) {
	return cast.ToStringSliceE(v)
}

func toTime(v any) (*time.Time, error) {
	t, err := cast.ToTimeE(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
