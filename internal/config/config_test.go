package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  source: postgres
  search_fields: [ownerName, phone]
saved_views:
  backend: sqlite
  path: /tmp/views.db
ui:
  theme: catppuccin
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Data.Source)
	assert.Equal(t, []string{"ownerName", "phone"}, cfg.Data.SearchFields)
	assert.Equal(t, "sqlite", cfg.SavedViews.Backend)
	assert.Equal(t, "catppuccin", cfg.UI.Theme)

	// Untouched keys keep their defaults
	assert.Equal(t, "en", cfg.General.Locale)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "crm.savedFilters", cfg.SavedViews.Key)
	assert.True(t, cfg.UI.MouseEnabled)

	p, err := cfg.SavedViewsPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/views.db", p)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CRMVIEW_GENERAL_LOCALE", "de")
	path := writeConfig(t, "ui:\n  theme: default\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.General.Locale)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "saved_views:\n  backend: redis\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "saved views backend")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDefaults_Valid(t *testing.T) {
	assert.NoError(t, GetDefaults().Validate())
}
