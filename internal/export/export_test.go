package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-dashboard/internal/model"
	"investment-dashboard/internal/pipeline"
)

func testDataset() *pipeline.Dataset {
	return &pipeline.Dataset{
		Records: []model.InvestmentRecord{
			{Year: 2019, Region: "Maule", Province: "Talca", Service: "Salud", Amount: 100},
			{Year: 2020, Region: "Biobio", Province: "Concepcion", Service: "Obras", Amount: 200},
		},
		Dropped:   1,
		FetchedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func snapshotDir(t *testing.T, baseDir string) string {
	t.Helper()
	entries, err := os.ReadDir(baseDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	return filepath.Join(baseDir, entries[0].Name())
}

func TestWriteSnapshotCSVAndJSON(t *testing.T) {
	dir := t.TempDir()
	results, err := WriteSnapshot(dir, []string{"csv", "json"}, testDataset(), "res-1")
	require.NoError(t, err)

	// 4 CSV files (series + 3 breakdowns) and 2 JSON files.
	assert.Len(t, results, 6)
	for _, result := range results {
		assert.FileExists(t, result.Path)
	}

	snapDir := snapshotDir(t, dir)

	file, err := os.Open(filepath.Join(snapDir, "annual_series.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"year", "total"}, rows[0])
	assert.Equal(t, []string{"2019", "100"}, rows[1])
	assert.Equal(t, []string{"2020", "200"}, rows[2])
}

func TestWriteSnapshotSummaryJSON(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteSnapshot(dir, []string{"json"}, testDataset(), "res-1")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(snapshotDir(t, dir), "summary.json"))
	require.NoError(t, err)

	var summary model.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "res-1", summary.ResourceID)
	assert.Equal(t, 2, summary.RecordCount)
	assert.Equal(t, 1, summary.RecordsDropped)
	assert.Equal(t, 300.0, summary.TotalAmount)
}

func TestWriteSnapshotUnknownFormat(t *testing.T) {
	_, err := WriteSnapshot(t.TempDir(), []string{"xml"}, testDataset(), "res-1")
	assert.Error(t, err)
}
