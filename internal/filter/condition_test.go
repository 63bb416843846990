package filter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func TestNewCondition(t *testing.T) {
	s := leads.Schema()

	c, err := NewCondition(s, models.FieldStatus, models.OpEquals, "HOT")
	require.NoError(t, err)
	_, err = uuid.Parse(c.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Status equals HOT", c.Label)

	c, err = NewCondition(s, models.FieldEmail, models.OpIsEmpty, "ignored")
	require.NoError(t, err)
	assert.Empty(t, c.Value)
	assert.Equal(t, "Email is empty", c.Label)

	c, err = NewCondition(s, models.FieldOwnerName, models.OpContains, "")
	require.NoError(t, err, "blank rows are allowed")
	assert.False(t, c.IsActive())
}

func TestNewCondition_Rejects(t *testing.T) {
	s := leads.Schema()

	_, err := NewCondition(s, "bogus", models.OpEquals, "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = NewCondition(s, models.FieldOwnerName, models.OpGreaterThan, "10")
	assert.ErrorIs(t, err, ErrInvalidOperator)

	_, err = NewCondition(s, models.FieldCreatedAt, models.OpContains, "2024")
	assert.ErrorIs(t, err, ErrInvalidOperator)
}

func TestWithValue_RefreshesLabel(t *testing.T) {
	s := leads.Schema()
	c, err := NewCondition(s, models.FieldCurrentArrears, models.OpGreaterThan, "")
	require.NoError(t, err)
	assert.Equal(t, "Current Arrears greater than …", c.Label)

	c2 := WithValue(s, c, "10000")
	assert.Equal(t, c.ID, c2.ID)
	assert.Equal(t, "10000", c2.Value)
	assert.Equal(t, "Current Arrears greater than 10000", c2.Label)
}
