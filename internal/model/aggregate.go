package model

import "time"

// SeriesPoint is one point of the annual investment time series
type SeriesPoint struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// BreakdownRow is one aggregated group of a categorical breakdown
type BreakdownRow struct {
	Value       string  `json:"value"`
	Total       float64 `json:"total"`
	RecordCount int     `json:"record_count"`
}

// ScatterPoint is one record projected onto the year/amount plane
type ScatterPoint struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
	Region string  `json:"region"`
}

// Summary describes the loaded dataset as a whole
type Summary struct {
	ResourceID     string    `json:"resource_id"`
	RecordCount    int       `json:"record_count"`
	RecordsDropped int       `json:"records_dropped"`
	TotalAmount    float64   `json:"total_amount"`
	YearMin        int       `json:"year_min"`
	YearMax        int       `json:"year_max"`
	FetchedAt      time.Time `json:"fetched_at"`
}
