package sorting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func ptr[T any](v T) *T { return &v }

func ids(ls []models.Lead) []string {
	var out []string
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func newSorter() *Sorter[models.Lead] {
	return NewSorter(leads.Schema(), language.English)
}

func TestSort_NumericAscending(t *testing.T) {
	recs := []models.Lead{
		{ID: "1", CurrentArrears: ptr(25000.0)},
		{ID: "2", CurrentArrears: ptr(3000.0)},
	}

	got := newSorter().Sort(recs, models.FieldCurrentArrears)
	assert.Equal(t, []string{"2", "1"}, ids(got))
	assert.Equal(t, []string{"1", "2"}, ids(recs), "input is not modified")
}

func TestSort_MissingNumberSortsAsZero(t *testing.T) {
	recs := []models.Lead{
		{ID: "a", CurrentArrears: ptr(10.0)},
		{ID: "b"},
		{ID: "c", CurrentArrears: ptr(-5.0)},
		{ID: "d", CurrentArrears: ptr(0.0)},
	}

	got := newSorter().Sort(recs, models.FieldCurrentArrears)
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(got), "missing ties with zero in encounter order")
}

func TestSort_TextIsCollated(t *testing.T) {
	recs := []models.Lead{
		{ID: "1", OwnerName: "bob"},
		{ID: "2", OwnerName: "Émile"},
		{ID: "3", OwnerName: "Alice"},
		{ID: "4", OwnerName: "eve"},
	}

	got := newSorter().Sort(recs, models.FieldOwnerName)
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids(got))
}

func TestSort_Stable(t *testing.T) {
	recs := []models.Lead{
		{ID: "1", Status: "HOT"},
		{ID: "2", Status: "COLD"},
		{ID: "3", Status: "HOT"},
		{ID: "4", Status: "COLD"},
	}

	got := newSorter().Sort(recs, models.FieldStatus)
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(got))
}

func TestSort_Dates(t *testing.T) {
	d := func(day int) *time.Time {
		v := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
		return &v
	}
	recs := []models.Lead{
		{ID: "1", CreatedAt: d(20)},
		{ID: "2", CreatedAt: d(3)},
		{ID: "3"},
	}

	got := newSorter().Sort(recs, models.FieldCreatedAt)
	assert.Equal(t, []string{"3", "2", "1"}, ids(got))
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	recs := []models.Lead{{ID: "2"}, {ID: "1"}}

	assert.Equal(t, []string{"2", "1"}, ids(newSorter().Sort(recs, "")))
	assert.Equal(t, []string{"2", "1"}, ids(newSorter().Sort(recs, "bogus")))
}
