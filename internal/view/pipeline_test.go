package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func ptr[T any](v T) *T { return &v }

func ids(ls []models.Lead) []string {
	out := []string{}
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func sample() []models.Lead {
	return []models.Lead{
		{ID: "1", Status: "HOT", CurrentArrears: ptr(25000.0), OwnerName: "John Smith"},
		{ID: "2", Status: "COLD", CurrentArrears: ptr(3000.0), OwnerName: "Ann Lee"},
	}
}

func newEngine() *Engine[models.Lead] {
	return NewEngine(leads.Schema(), EngineConfig{})
}

func statusEquals(v string) models.FilterCondition {
	return models.FilterCondition{ID: "s", Field: models.FieldStatus, Operator: models.OpEquals, Value: v}
}

func TestCompute_Examples(t *testing.T) {
	e := newEngine()
	all := sample()

	tests := []struct {
		name string
		in   Inputs
		want []string
	}{
		{"no inputs", Inputs{}, []string{"1", "2"}},
		{"status equals", Inputs{Conditions: []models.FilterCondition{statusEquals("HOT")}}, []string{"1"}},
		{"search owner", Inputs{Query: "ann"}, []string{"2"}},
		{"sort arrears", Inputs{SortField: models.FieldCurrentArrears}, []string{"2", "1"}},
		{"search and filter are ANDed", Inputs{Query: "ann", Conditions: []models.FilterCondition{statusEquals("HOT")}}, []string{}},
		{"malformed number", Inputs{Conditions: []models.FilterCondition{
			{ID: "a", Field: models.FieldCurrentArrears, Operator: models.OpGreaterThan, Value: "abc"},
		}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(e.Compute(all, tt.in)))
		})
	}
	assert.Equal(t, []string{"1", "2"}, ids(all), "input untouched")
}

func TestView_RecomputesOnEveryChange(t *testing.T) {
	v := New(newEngine(), sample(), Inputs{})
	var notified [][]string
	v.Subscribe(func(visible []models.Lead) { notified = append(notified, ids(visible)) })

	v.OnSortChange(models.FieldCurrentArrears)
	v.OnFiltersChange([]models.FilterCondition{statusEquals("COLD")})
	v.OnSearchChange("zzz")
	v.OnSearchChange("")
	v.SetRecords(append(sample(), models.Lead{ID: "3", Status: "COLD", CurrentArrears: ptr(100.0)}))

	assert.Equal(t, [][]string{
		{"2", "1"},
		{"2"},
		{},
		{"2"},
		{"3", "2"},
	}, notified)
	assert.Equal(t, []string{"3", "2"}, ids(v.VisibleRecords()))
	assert.Equal(t, 3, v.Total())
}

func TestView_ActiveFilterCount(t *testing.T) {
	v := New(newEngine(), sample(), Inputs{})
	assert.Equal(t, 0, v.ActiveFilterCount())

	v.OnFiltersChange([]models.FilterCondition{
		statusEquals("HOT"),
		{ID: "blank", Field: models.FieldOwnerName, Operator: models.OpContains},
		{ID: "empty", Field: models.FieldEmail, Operator: models.OpIsEmpty},
	})
	assert.Equal(t, 2, v.ActiveFilterCount())
	assert.Equal(t, []string{"1"}, ids(v.VisibleRecords()))
}

func TestView_OwnsItsConditions(t *testing.T) {
	conds := []models.FilterCondition{statusEquals("HOT")}
	v := New(newEngine(), sample(), Inputs{Conditions: conds})

	conds[0].Value = "COLD"
	assert.Equal(t, "HOT", v.Conditions()[0].Value)
	require.Len(t, v.VisibleRecords(), 1)
}
