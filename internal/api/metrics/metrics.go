// Package metrics defines and registers all custom Prometheus metrics for
// the reservation API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry via promauto at package load;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "spa"

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - service: the treatment name booked
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by treatment.",
	},
	[]string{"service"},
)

// BookingStatusChangesTotal counts applied status transitions.
// Label:
//   - status: the new booking status (e.g. "confirmed", "cancelled")
var BookingStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_changes_total",
		Help:      "Total number of booking status transitions applied.",
	},
	[]string{"status"},
)

// ListQueryDuration measures how long a filtered list query takes, including
// the concurrent count and page fetch.
// Label:
//   - entity: the table queried (e.g. "guests", "bookings")
var ListQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "list_query_duration_seconds",
		Help:      "Duration of filtered list queries against the database.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"entity"},
)

// DashboardCacheTotal counts dashboard cache lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ReportsRenderedTotal counts generated PDF reports.
var ReportsRenderedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_rendered_total",
		Help:      "Total number of daily schedule PDFs rendered.",
	},
)
