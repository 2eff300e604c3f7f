package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes as recorded against the datastore endpoint.
const (
	OutcomeCacheHit     = "cache_hit"
	OutcomeFetched      = "fetched"
	OutcomeNetworkError = "network_error"
	OutcomeStatusError  = "status_error"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investment_fetch_total",
		Help: "Datastore fetch attempts by outcome.",
	}, []string{"outcome"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investment_http_requests_total",
		Help: "Dashboard HTTP requests by path and status.",
	}, []string{"path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "investment_http_request_duration_seconds",
		Help:    "Dashboard HTTP request latency by path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)

// ObserveFetch records one fetch attempt outcome.
func ObserveFetch(outcome string) {
	fetchTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one served HTTP request; wired as the router hook.
func ObserveRequest(path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
