package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"investment-dashboard/internal/model"
	"investment-dashboard/internal/pipeline"
)

// Result describes one written snapshot file.
type Result struct {
	Format      string    `json:"format"`
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	ExportedAt  time.Time `json:"exported_at"`
}

// WriteSnapshot exports the dataset's aggregates into a fresh snapshot
// directory under dir, one file per aggregate per requested format
// ("csv" and/or "json"). It returns a result per written file.
func WriteSnapshot(dir string, formats []string, ds *pipeline.Dataset, resourceID string) ([]Result, error) {
	snapshotDir := filepath.Join(dir, "snapshot-"+uuid.NewString())
	if err := os.MkdirAll(snapshotDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	series := pipeline.AnnualSeries(ds.Records)
	summary := pipeline.Summarize(ds, resourceID)

	var results []Result
	for _, format := range formats {
		switch format {
		case "csv":
			r, err := writeSeriesCSV(snapshotDir, series)
			if err != nil {
				return results, err
			}
			results = append(results, r)

			for _, dim := range []model.Dimension{model.DimensionRegion, model.DimensionProvince, model.DimensionService} {
				rows, err := pipeline.Breakdown(ds.Records, dim)
				if err != nil {
					return results, err
				}
				r, err := writeBreakdownCSV(snapshotDir, dim, rows)
				if err != nil {
					return results, err
				}
				results = append(results, r)
			}
		case "json":
			r, err := writeJSONFile(snapshotDir, "summary.json", summary, summary.RecordCount)
			if err != nil {
				return results, err
			}
			results = append(results, r)

			r, err = writeJSONFile(snapshotDir, "annual_series.json", series, len(series))
			if err != nil {
				return results, err
			}
			results = append(results, r)
		default:
			return results, fmt.Errorf("unknown export format %q", format)
		}
	}
	return results, nil
}

func writeSeriesCSV(dir string, series []model.SeriesPoint) (Result, error) {
	path := filepath.Join(dir, "annual_series.csv")
	rows := make([][]string, 0, len(series))
	for _, p := range series {
		rows = append(rows, []string{
			strconv.Itoa(p.Year),
			strconv.FormatFloat(p.Total, 'f', -1, 64),
		})
	}
	if err := writeCSV(path, []string{"year", "total"}, rows); err != nil {
		return Result{}, err
	}
	return Result{Format: "csv", Path: path, RecordCount: len(series), ExportedAt: time.Now().UTC()}, nil
}

func writeBreakdownCSV(dir string, dim model.Dimension, breakdown []model.BreakdownRow) (Result, error) {
	path := filepath.Join(dir, fmt.Sprintf("breakdown_%s.csv", dim))
	rows := make([][]string, 0, len(breakdown))
	for _, row := range breakdown {
		rows = append(rows, []string{
			row.Value,
			strconv.FormatFloat(row.Total, 'f', -1, 64),
			strconv.Itoa(row.RecordCount),
		})
	}
	if err := writeCSV(path, []string{string(dim), "total", "record_count"}, rows); err != nil {
		return Result{}, err
	}
	return Result{Format: "csv", Path: path, RecordCount: len(breakdown), ExportedAt: time.Now().UTC()}, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func writeJSONFile(dir, name string, v interface{}, recordCount int) (Result, error) {
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return Result{}, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return Result{Format: "json", Path: path, RecordCount: recordCount, ExportedAt: time.Now().UTC()}, nil
}
