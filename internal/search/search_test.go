package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func sample() []models.Lead {
	return []models.Lead{
		{ID: "1", OwnerName: "John Smith", PropertyAddress: "12 Annapolis Rd", TaxID: "TX-100", Email: "js@example.com"},
		{ID: "2", OwnerName: "Ann Lee", PropertyAddress: "4 Elm St", TaxID: "TX-200"},
		{ID: "3", PropertyAddress: "9 Oak Ave", Phone: "555-0199"},
	}
}

func ids(ls []models.Lead) []string {
	var out []string
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestSearch_BlankQueryMatchesAll(t *testing.T) {
	s := leads.Schema()
	recs := sample()

	for _, q := range []string{"", "   ", "\t"} {
		assert.Equal(t, recs, Search(s, recs, q, nil))
		assert.Equal(t, recs, Search(s, recs, q, []string{models.FieldEmail}))
	}
}

func TestSearch_OwnerName(t *testing.T) {
	got := Search(leads.Schema(), sample(), "ann", []string{models.FieldOwnerName})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestSearch_DefaultFieldsAreAnyMatch(t *testing.T) {
	s := leads.Schema()

	assert.Equal(t, []string{"1", "2"}, ids(Search(s, sample(), "ANN", nil)), "owner name or address")
	assert.Equal(t, []string{"2"}, ids(Search(s, sample(), "tx-2", nil)))
	assert.Equal(t, []string{"1"}, ids(Search(s, sample(), "example.com", nil)))
	assert.Empty(t, Search(s, sample(), "555", nil), "phone is not searched by default")
}

func TestSearch_SpacesArePartOfTheQuery(t *testing.T) {
	s := leads.Schema()
	fields := []string{models.FieldOwnerName}

	assert.Empty(t, Search(s, sample(), "lee ", fields), "trailing space is not trimmed")
	assert.Equal(t, []string{"2"}, ids(Search(s, sample(), "ann lee", fields)))
	assert.Equal(t, []string{"2"}, ids(Search(s, sample(), " lee", fields)))
}

func TestSearch_MissingFieldsNeverMatch(t *testing.T) {
	got := Search(leads.Schema(), sample(), "a", []string{models.FieldEmail, "nonexistent"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher(leads.Schema(), []string{models.FieldPhone})
	recs := sample()

	assert.True(t, m.Match(recs[2], " 0199 "))
	assert.False(t, m.Match(recs[0], "0199"))
	assert.True(t, m.Match(recs[0], ""))
}
