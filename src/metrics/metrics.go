// Package metrics provides Prometheus metrics for the suggestion service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "suggestion_app"
)

var (
	// HTTPメトリクス
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	// セッション（一覧ビュー）メトリクス
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Number of live list view sessions",
		},
	)

	LikeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggestions",
			Name:      "like_toggles_total",
			Help:      "Total number of like toggles by resulting action",
		},
		[]string{"action"},
	)

	FavoriteChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggestions",
			Name:      "favorite_changes_total",
			Help:      "Total number of favorite changes by operation and whether state changed",
		},
		[]string{"operation", "changed"},
	)

	DetailLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggestions",
			Name:      "detail_lookups_total",
			Help:      "Total number of detail view lookups by result",
		},
		[]string{"result"},
	)
)

// ObserveLikeToggle records a like toggle
func ObserveLikeToggle(liked bool) {
	action := "unlike"
	if liked {
		action = "like"
	}
	LikeTogglesTotal.WithLabelValues(action).Inc()
}

// ObserveFavoriteChange records a favorite add or remove
func ObserveFavoriteChange(operation string, changed bool) {
	label := "false"
	if changed {
		label = "true"
	}
	FavoriteChangesTotal.WithLabelValues(operation, label).Inc()
}

// ObserveDetailLookup records the outcome of a detail view activation
func ObserveDetailLookup(found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	DetailLookupsTotal.WithLabelValues(result).Inc()
}
