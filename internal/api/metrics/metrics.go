// Package metrics defines and registers all custom Prometheus metrics for
// the podcast platform. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "podcast"

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: LISTENER or CREATOR
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// UploadsTotal counts stored upload files.
// Label:
//   - kind: "audio" or "thumbnail"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files written to the content directory, by kind.",
	},
	[]string{"kind"},
)

// HistoryUpsertsTotal counts listening-history writes.
// Label:
//   - completed: "true" when the progress crossed the completion threshold
var HistoryUpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_upserts_total",
		Help:      "Total number of listening-history upserts, by completion.",
	},
	[]string{"completed"},
)

// RateLimitRejectionsTotal counts requests refused by the per-IP limiter.
var RateLimitRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejections_total",
		Help:      "Total number of requests rejected by the fixed-window rate limiter.",
	},
)
