package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaibi326/crm-success-hub-sub000/internal/leads"
	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

func sampleLeads() []models.Lead {
	arrears := 25000.0
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []models.Lead{
		{
			ID:              "1",
			OwnerName:       "Smith, John",
			PropertyAddress: `12 "Oak" St`,
			Status:          models.StatusHot,
			CurrentArrears:  &arrears,
			Tags:            []string{"probate", "vacant"},
			CreatedAt:       &created,
		},
		{ID: "2", OwnerName: "Ann Lee"},
	}
}

func TestWriteCSV_SelectedColumns(t *testing.T) {
	var buf bytes.Buffer
	keys := []string{models.FieldOwnerName, models.FieldPropertyAddress, models.FieldCurrentArrears, models.FieldTags, models.FieldCreatedAt, "bogus"}

	require.NoError(t, WriteCSV(&buf, leads.Schema(), sampleLeads(), keys))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Owner Name", "Property Address", "Current Arrears", "Tags", "Created On"}, records[0])
	assert.Equal(t, []string{"Smith, John", `12 "Oak" St`, "25000", "probate,vacant", "2024-01-15"}, records[1])
	assert.Equal(t, []string{"Ann Lee", "", "", "", ""}, records[2])
}

func TestWriteCSV_AllColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, leads.Schema(), nil, nil))

	header := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(header, "ID,Owner Name,"))
	assert.Len(t, strings.Split(header, ","), len(leads.Schema().Fields()))
}

func TestExportToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, ExportToCSV(leads.Schema(), sampleLeads(), []string{models.FieldID}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID\n1\n2\n", string(data))
}

func TestExportViewsToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.json")
	views := []models.SavedFilter{{
		ID:        "v1",
		Name:      "Hot leads",
		Filters:   []models.FilterCondition{{ID: "c1", Field: "status", Operator: models.OpEquals, Value: "HOT"}},
		CreatedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
	}}

	require.NoError(t, ExportViewsToJSON(views, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createdAt": "2024-02-01T09:30:00Z"`)

	var back []models.SavedFilter
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, views, back)
}

func TestExportViewsToJSON_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.json")
	require.NoError(t, ExportViewsToJSON(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
