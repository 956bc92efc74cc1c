package monitoring

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_requests_total",
			Help: "Total API requests by route and status",
		},
		[]string{"route", "status"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agenda_cache_lookups_total",
			Help: "Event cache lookups by outcome (hit, miss, bypass)",
		},
		[]string{"outcome"},
	)

	searchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agenda_searches_total",
			Help: "Total event searches",
		},
	)

	cachedEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agenda_cached_events",
			Help: "Number of events in the last cached snapshot",
		},
	)

	rateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "agenda_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

// TrackRequest records one handled API request.
func TrackRequest(route, status string) {
	requestsTotal.WithLabelValues(route, status).Inc()
}

// TrackCacheLookup records an event cache lookup outcome.
func TrackCacheLookup(outcome string) {
	cacheLookups.WithLabelValues(outcome).Inc()
}

// TrackSearch records one search request.
func TrackSearch() {
	searchesTotal.Inc()
}

// SetCachedEvents records the size of the cached event snapshot.
func SetCachedEvents(n int) {
	cachedEvents.Set(float64(n))
}

// TrackRateLimited records a rejected request.
func TrackRateLimited() {
	rateLimited.Inc()
}

// StartMetricsServer exposes /metrics on its own port.
func StartMetricsServer(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()
}
