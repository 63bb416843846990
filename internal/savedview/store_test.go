package savedview

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, port Port) *Store {
	t.Helper()
	s, err := NewStore(port, nil)
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow }
	return s
}

func hotConditions() []models.FilterCondition {
	return []models.FilterCondition{
		{ID: "c1", Field: "status", Operator: models.OpEquals, Value: "HOT", Label: "Status equals HOT"},
		{ID: "c2", Field: "currentArrears", Operator: models.OpGreaterThan, Value: "10000", Label: "Current Arrears greater than 10000"},
	}
}

func TestSave_ApplyRoundTrip(t *testing.T) {
	s := newTestStore(t, NewMemoryPort())
	conds := hotConditions()

	saved, err := s.Save("  Hot leads ", conds)
	require.NoError(t, err)
	assert.Equal(t, "Hot leads", saved.Name)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, fixedNow, saved.CreatedAt)

	if diff := cmp.Diff(conds, s.Apply(saved)); diff != "" {
		t.Errorf("apply mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_StoresACopy(t *testing.T) {
	s := newTestStore(t, NewMemoryPort())
	conds := hotConditions()

	saved, err := s.Save("Hot", conds)
	require.NoError(t, err)

	conds[0].Value = "COLD"
	got, err := s.Get(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "HOT", got.Filters[0].Value)

	applied := s.Apply(got)
	applied[0].Value = "WARM"
	got, _ = s.Get(saved.ID)
	assert.Equal(t, "HOT", got.Filters[0].Value)
}

func TestSave_Validation(t *testing.T) {
	s := newTestStore(t, NewMemoryPort())
	_, err := s.Save("My View", hotConditions())
	require.NoError(t, err)

	tests := []struct {
		name    string
		view    string
		conds   []models.FilterCondition
		wantErr error
	}{
		{"blank name", "   ", hotConditions(), ErrBlankName},
		{"no conditions", "Other", nil, ErrNoConditions},
		{"duplicate name ignoring case", "my view", hotConditions(), ErrDuplicateName},
		{"duplicate name after trim", " MY VIEW ", hotConditions(), ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(tt.view, tt.conds)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
		})
	}
	assert.Len(t, s.List(), 1)
}

func TestDelete(t *testing.T) {
	port := NewMemoryPort()
	s := newTestStore(t, port)
	saved, err := s.Save("Hot", hotConditions())
	require.NoError(t, err)

	ok, err := s.Delete("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Delete(saved.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, s.List())

	_, err = s.Get(saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, port.persists)
}

func TestUpdate_PreservesID(t *testing.T) {
	s := newTestStore(t, NewMemoryPort())
	first, err := s.Save("First", hotConditions())
	require.NoError(t, err)
	second, err := s.Save("Second", hotConditions())
	require.NoError(t, err)

	_, err = s.Update(second.ID, "FIRST", hotConditions())
	assert.ErrorIs(t, err, ErrDuplicateName)

	newConds := hotConditions()[:1]
	updated, err := s.Update(first.ID, "first", newConds)
	require.NoError(t, err, "renaming to a case variant of itself is allowed")
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "first", updated.Name)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Len(t, list[1].Filters, 1)

	_, err = s.Update("missing", "x", newConds)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t, NewMemoryPort())
	_, _ = s.Save("Hot leads", hotConditions())
	_, _ = s.Save("Harris County", hotConditions())

	assert.Len(t, s.Search(""), 2)
	got := s.Search("HOT")
	require.Len(t, got, 1)
	assert.Equal(t, "Hot leads", got[0].Name)
}

type failingPort struct {
	MemoryPort
	err error
}

func (p *failingPort) Persist([]models.SavedFilter) error { return p.err }

func TestSave_PersistFailureLeavesStoreUnchanged(t *testing.T) {
	boom := errors.New("disk full")
	s := newTestStore(t, &failingPort{err: boom})

	_, err := s.Save("Hot", hotConditions())
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsValidation(err))
	assert.Empty(t, s.List())
}

func TestNewStore_LoadsExisting(t *testing.T) {
	existing := models.SavedFilter{ID: "v1", Name: "Existing", Filters: hotConditions(), CreatedAt: fixedNow}
	s := newTestStore(t, NewMemoryPort(existing))

	_, err := s.Save("existing", hotConditions())
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, []models.SavedFilter{existing}, s.List())
}
