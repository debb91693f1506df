// README: Prometheus collectors for HTTP traffic, the catalog and recommendations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripsense"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	CatalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "fetch_duration_seconds",
			Help:      "Catalog source fetch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "status"},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "cache_total",
			Help:      "Catalog cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "advisor",
			Name:      "recommendations_total",
			Help:      "Transport recommendations by winning mode",
		},
		[]string{"mode"},
	)

	EventAffectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "advisor",
			Name:      "event_affected_total",
			Help:      "Recommendations where at least one regional event applied",
		},
	)
)

// Status labels a fetch outcome.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
