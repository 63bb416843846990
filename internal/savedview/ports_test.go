package savedview

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func sampleViews() []models.SavedFilter {
	return []models.SavedFilter{
		{ID: "v1", Name: "Hot leads", Filters: hotConditions(), CreatedAt: fixedNow},
		{ID: "v2", Name: "No email", Filters: []models.FilterCondition{
			{ID: "c3", Field: "email", Operator: models.OpIsEmpty, Label: "Email is empty"},
		}, CreatedAt: fixedNow.Add(90 * time.Minute)},
	}
}

func assertRoundTrip(t *testing.T, port Port) {
	t.Helper()

	empty, err := port.Load()
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, port.Persist(sampleViews()))
	got, err := port.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(sampleViews(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, port.Persist(nil))
	got, err = port.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestYAMLPort_RoundTrip(t *testing.T) {
	assertRoundTrip(t, NewYAMLPort(filepath.Join(t.TempDir(), "nested", "views.yaml")))
}

func TestKVFilePort_RoundTrip(t *testing.T) {
	assertRoundTrip(t, NewKVFilePort(filepath.Join(t.TempDir(), "store.json"), ""))
}

func TestSQLitePort_RoundTrip(t *testing.T) {
	port, err := NewSQLitePort(filepath.Join(t.TempDir(), "views.db"), "")
	require.NoError(t, err)
	defer func() { _ = port.Close() }()

	assertRoundTrip(t, port)
}

func TestKVFilePort_KeepsOtherKeysAndUsesISODates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ui.theme":"dark"}`), 0644))

	port := NewKVFilePort(path, "")
	require.NoError(t, port.Persist(sampleViews()[:1]))

	var raw map[string]json.RawMessage
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `"dark"`, string(raw["ui.theme"]))

	var views []map[string]any
	require.NoError(t, json.Unmarshal(raw[DefaultKey], &views))
	require.Len(t, views, 1)
	assert.Equal(t, "2024-05-01T12:00:00Z", views[0]["createdAt"])
}

func TestStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.yaml")

	s := newTestStore(t, NewYAMLPort(path))
	saved, err := s.Save("Hot leads", hotConditions())
	require.NoError(t, err)

	reopened := newTestStore(t, NewYAMLPort(path))
	got, err := reopened.Get(saved.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(hotConditions(), reopened.Apply(got)); diff != "" {
		t.Errorf("conditions mismatch (-want +got):\n%s", diff)
	}
}
