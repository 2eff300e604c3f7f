package pipeline

import (
	"fmt"
	"sort"

	"investment-dashboard/internal/model"
)

// ------------------- Aggregation -------------------

// AnnualSeries sums investment per year, ascending by year.
func AnnualSeries(records []model.InvestmentRecord) []model.SeriesPoint {
	totals := make(map[int]float64)
	for _, rec := range records {
		totals[rec.Year] += rec.Amount
	}

	series := make([]model.SeriesPoint, 0, len(totals))
	for year, total := range totals {
		series = append(series, model.SeriesPoint{Year: year, Total: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

// Breakdown sums investment per value of the given dimension, descending by
// total so the largest groups chart first.
func Breakdown(records []model.InvestmentRecord, dim model.Dimension) ([]model.BreakdownRow, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("unknown breakdown dimension %q", dim)
	}

	type group struct {
		total float64
		count int
	}
	groups := make(map[string]*group)
	for _, rec := range records {
		value := rec.Value(dim)
		g, ok := groups[value]
		if !ok {
			g = &group{}
			groups[value] = g
		}
		g.total += rec.Amount
		g.count++
	}

	rows := make([]model.BreakdownRow, 0, len(groups))
	for value, g := range groups {
		rows = append(rows, model.BreakdownRow{Value: value, Total: g.total, RecordCount: g.count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Value < rows[j].Value
	})
	return rows, nil
}

// ScatterPoints projects every record onto the year/amount plane, tagged with
// its region for per-region series.
func ScatterPoints(records []model.InvestmentRecord) []model.ScatterPoint {
	points := make([]model.ScatterPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, model.ScatterPoint{
			Year:   rec.Year,
			Amount: rec.Amount,
			Region: rec.Region,
		})
	}
	return points
}

// Summarize describes the loaded dataset for the summary endpoint.
func Summarize(ds *Dataset, resourceID string) model.Summary {
	summary := model.Summary{
		ResourceID:     resourceID,
		RecordCount:    len(ds.Records),
		RecordsDropped: ds.Dropped,
		FetchedAt:      ds.FetchedAt,
	}
	for i, rec := range ds.Records {
		summary.TotalAmount += rec.Amount
		if i == 0 || rec.Year < summary.YearMin {
			summary.YearMin = rec.Year
		}
		if rec.Year > summary.YearMax {
			summary.YearMax = rec.Year
		}
	}
	return summary
}
