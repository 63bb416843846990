package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
	"github.com/zaibi326/crm-success-hub-sub000/internal/savedview"
)

func TestPanel_HappyPath(t *testing.T) {
	var p Panel
	assert.Equal(t, PanelClosed, p.State())

	require.NoError(t, p.Open())
	require.NoError(t, p.Edit())
	require.NoError(t, p.BeginSave())
	require.NoError(t, p.CancelSave())
	assert.Equal(t, PanelEditing, p.State())
	require.NoError(t, p.Close())
	assert.Equal(t, PanelClosed, p.State())
}

func TestPanel_InvalidTransitions(t *testing.T) {
	var p Panel
	assert.ErrorIs(t, p.Edit(), ErrInvalidTransition)
	assert.ErrorIs(t, p.BeginSave(), ErrInvalidTransition)
	assert.ErrorIs(t, p.Close(), ErrInvalidTransition)

	require.NoError(t, p.Open())
	assert.ErrorIs(t, p.Open(), ErrInvalidTransition)
	assert.ErrorIs(t, p.BeginSave(), ErrInvalidTransition, "saving needs editing first")
	assert.Equal(t, PanelOpen, p.State())
}

func TestPanel_CommitSave(t *testing.T) {
	store, err := savedview.NewStore(savedview.NewMemoryPort(), nil)
	require.NoError(t, err)
	conds := []models.FilterCondition{statusEquals("HOT")}

	var p Panel
	_, err = p.CommitSave(store, "Hot", conds)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, p.Open())
	require.NoError(t, p.Edit())
	require.NoError(t, p.BeginSave())

	_, err = p.CommitSave(store, "  ", conds)
	assert.ErrorIs(t, err, savedview.ErrBlankName)
	assert.Equal(t, PanelSavingView, p.State(), "stays in name entry on validation failure")

	saved, err := p.CommitSave(store, "Hot", conds)
	require.NoError(t, err)
	assert.Equal(t, "Hot", saved.Name)
	assert.Equal(t, PanelOpen, p.State())
}
