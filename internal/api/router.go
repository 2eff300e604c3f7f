package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"investment-dashboard/internal/api/handler"
	"investment-dashboard/internal/metrics"
	"investment-dashboard/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.DashboardHandler) {
	r.GET("/api/v1/health", h.Health)
	r.GET("/api/v1/investments/summary", h.GetSummary)
	r.GET("/api/v1/investments/series/annual", h.GetAnnualSeries)
	r.GET("/api/v1/investments/breakdown/*", h.GetBreakdown)
	r.GET("/api/v1/investments/scatter", h.GetScatter)
	r.GET("/api/v1/investments/records", h.GetRecords)

	r.Handle(http.MethodGet, "/swagger/*", httpSwagger.WrapHandler)
	r.Handle(http.MethodGet, "/metrics", metrics.Handler())
}
