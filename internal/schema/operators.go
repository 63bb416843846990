package schema

import "github.com/zaibi326/crm-success-hub-sub000/internal/models"

// OperatorsForType returns available operators for a given field type
func OperatorsForType(t models.FieldType) []models.FilterOperator {
	switch t {
	case models.FieldText:
		return []models.FilterOperator{
			models.OpEquals, models.OpContains,
			models.OpStartsWith, models.OpEndsWith,
			models.OpIsEmpty, models.OpIsNotEmpty,
		}
	case models.FieldNumber:
		return []models.FilterOperator{
			models.OpEquals,
			models.OpGreaterThan, models.OpLessThan,
			models.OpGte, models.OpLte,
			models.OpIsEmpty, models.OpIsNotEmpty,
		}
	case models.FieldDate:
		return []models.FilterOperator{
			models.OpEquals,
			models.OpGte, models.OpLte,
			models.OpIsEmpty, models.OpIsNotEmpty,
		}
	case models.FieldEnum:
		return []models.FilterOperator{
			models.OpEquals, models.OpContains,
			models.OpIsEmpty, models.OpIsNotEmpty,
		}
	case models.FieldMulti:
		return []models.FilterOperator{
			models.OpEquals, models.OpContains,
			models.OpIsEmpty, models.OpIsNotEmpty,
		}
	default:
		return []models.FilterOperator{
			models.OpEquals,
			models.OpIsEmpty, models.OpIsNotEmpty,
		}
	}
}

// AllowsOperator reports whether op is valid for fields of type t.
func AllowsOperator(t models.FieldType, op models.FilterOperator) bool {
	for _, allowed := range OperatorsForType(t) {
		if allowed == op {
			return true
		}
	}
	return false
}
