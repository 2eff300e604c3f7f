package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"investment-dashboard/internal/model"
	"investment-dashboard/internal/pipeline"
)

// DashboardHandler serves the aggregate endpoints the chart page and any
// other consumer read from.
type DashboardHandler struct {
	loader *pipeline.Loader
	log    *logrus.Logger
}

func NewDashboardHandler(loader *pipeline.Loader, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{loader: loader, log: log}
}

// Health reports service liveness
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /health [get]
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

// GetSummary returns dataset-level totals
// @Summary Dataset summary
// @Description Totals, year range, and dropped-record count for the loaded dataset
// @Tags investments
// @Produce json
// @Success 200 {object} model.Summary "Dataset summary"
// @Failure 502 {object} map[string]interface{} "Upstream data source failed"
// @Router /investments/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pipeline.Summarize(ds, h.loader.ResourceID()))
}

// GetAnnualSeries returns the investment time series
// @Summary Annual investment series
// @Description Sum of investment per year, ascending
// @Tags investments
// @Produce json
// @Success 200 {object} map[string]interface{} "Series points"
// @Failure 502 {object} map[string]interface{} "Upstream data source failed"
// @Router /investments/series/annual [get]
func (h *DashboardHandler) GetAnnualSeries(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}
	series := pipeline.AnnualSeries(ds.Records)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"series": series,
		"count":  len(series),
	})
}

// GetBreakdown returns an aggregated categorical breakdown
// @Summary Investment breakdown
// @Description Sum and record count per value of a categorical dimension
// @Tags investments
// @Produce json
// @Param dimension path string true "Breakdown dimension" Enums(region, province, service)
// @Success 200 {object} map[string]interface{} "Breakdown rows"
// @Failure 400 {object} map[string]interface{} "Unknown dimension"
// @Failure 502 {object} map[string]interface{} "Upstream data source failed"
// @Router /investments/breakdown/{dimension} [get]
func (h *DashboardHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/investments/breakdown/"
	dim := model.Dimension(strings.TrimPrefix(r.URL.Path, prefix))
	if !dim.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": "unknown dimension, expected one of: region, province, service",
		})
		return
	}

	ds, ok := h.load(w, r)
	if !ok {
		return
	}
	rows, err := pipeline.Breakdown(ds.Records, dim)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dimension": dim,
		"rows":      rows,
		"count":     len(rows),
	})
}

// GetScatter returns year/amount pairs per record
// @Summary Year vs amount scatter
// @Description One point per record, tagged with region
// @Tags investments
// @Produce json
// @Success 200 {object} map[string]interface{} "Scatter points"
// @Failure 502 {object} map[string]interface{} "Upstream data source failed"
// @Router /investments/scatter [get]
func (h *DashboardHandler) GetScatter(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}
	points := pipeline.ScatterPoints(ds.Records)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": points,
		"count":  len(points),
	})
}

// GetRecords returns the validated raw records
// @Summary Raw records
// @Description The validated record sequence exactly as returned by the datastore
// @Tags investments
// @Produce json
// @Success 200 {object} map[string]interface{} "Raw records"
// @Failure 502 {object} map[string]interface{} "Upstream data source failed"
// @Router /investments/records [get]
func (h *DashboardHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": ds.Raw,
		"count":   len(ds.Raw),
	})
}

// load runs the pipeline and, on failure, writes the taxonomy-specific
// response. An empty record set is a 200 with a warning, not an error.
func (h *DashboardHandler) load(w http.ResponseWriter, r *http.Request) (*pipeline.Dataset, bool) {
	ds, err := h.loader.Load(r.Context())
	if err == nil {
		return ds, true
	}

	status, headline, cause := pipeline.UserMessage(err)
	if pipeline.IsEmptyResult(err) {
		writeJSON(w, status, map[string]interface{}{
			"warning": headline,
			"records": []model.RawRecord{},
			"count":   0,
		})
		return nil, false
	}

	h.log.WithError(err).Error("dataset load failed")
	body := map[string]interface{}{"error": headline}
	if cause != "" {
		body["cause"] = cause
	}
	writeJSON(w, status, body)
	return nil, false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
