// Package leads registers the CRM lead fields with the filter engine.
package leads

import (
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/schema"
)

// DefaultSearchFields are matched by the search box when config names none.
var DefaultSearchFields = []string{
	models.FieldOwnerName,
	models.FieldPropertyAddress,
	models.FieldTaxID,
	models.FieldEmail,
}

func text(key, label string, searchable bool, get func(models.Lead) string) schema.Field[models.Lead] {
	return schema.Field[models.Lead]{
		Key:        key,
		Label:      label,
		Type:       models.FieldText,
		Searchable: searchable,
		Sortable:   true,
		Get: func(l models.Lead) any {
			if v := get(l); v != "" {
				return v
			}
			return nil
		},
	}
}

// Schema returns the lead field schema.
func Schema() *schema.Schema[models.Lead] {
	return schema.MustNew(
		text(models.FieldID, "ID", false, func(l models.Lead) string { return l.ID }),
		text(models.FieldOwnerName, "Owner Name", true, func(l models.Lead) string { return l.OwnerName }),
		text(models.FieldPropertyAddress, "Property Address", true, func(l models.Lead) string { return l.PropertyAddress }),
		text(models.FieldTaxID, "Tax ID", true, func(l models.Lead) string { return l.TaxID }),
		text(models.FieldEmail, "Email", true, func(l models.Lead) string { return l.Email }),
		text(models.FieldPhone, "Phone", false, func(l models.Lead) string { return l.Phone }),
		schema.Field[models.Lead]{
			Key:      models.FieldStatus,
			Label:    "Status",
			Type:     models.FieldEnum,
			Sortable: true,
			Get: func(l models.Lead) any {
				if l.Status == "" {
					return nil
				}
				return l.Status
			},
		},
		text(models.FieldCounty, "County", false, func(l models.Lead) string { return l.County }),
		schema.Field[models.Lead]{
			Key:      models.FieldCurrentArrears,
			Label:    "Current Arrears",
			Type:     models.FieldNumber,
			Sortable: true,
			Get: func(l models.Lead) any {
				if l.CurrentArrears == nil {
					return nil
				}
				return *l.CurrentArrears
			},
		},
		text(models.FieldTaxLawsuitNumber, "Tax Lawsuit Number", false, func(l models.Lead) string { return l.TaxLawsuitNumber }),
		text(models.FieldCreatedBy, "Created By", false, func(l models.Lead) string { return l.CreatedBy }),
		text(models.FieldSellerContact, "Seller Contact", false, func(l models.Lead) string { return l.SellerContact }),
		schema.Field[models.Lead]{
			Key:   models.FieldTags,
			Label: "Tags",
			Type:  models.FieldMulti,
			Get:   func(l models.Lead) any { return l.Tags },
		},
		schema.Field[models.Lead]{
			Key:      models.FieldCreatedAt,
			Label:    "Created On",
			Type:     models.FieldDate,
			Sortable: true,
			Get: func(l models.Lead) any {
				if l.CreatedAt == nil {
					return nil
				}
				return *l.CreatedAt
			},
		},
		schema.Field[models.Lead]{
			Key:      models.FieldUpdatedAt,
			Label:    "Updated On",
			Type:     models.FieldDate,
			Sortable: true,
			Get: func(l models.Lead) any {
				if l.UpdatedAt == nil {
					return nil
				}
				return *l.UpdatedAt
			},
		},
	)
}
