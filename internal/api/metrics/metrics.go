// Package metrics defines and registers the custom Prometheus metrics of the
// coffee shop admin API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coffee"

// ── Product metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts products inserted into the store.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ProductsReplayedTotal counts create requests answered from a remembered
// Idempotency-Key instead of inserting a new product.
var ProductsReplayedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_replayed_total",
		Help:      "Total number of product creations replayed from an idempotency key.",
	},
)

// ProductsUpdatedTotal counts successful product updates.
var ProductsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_updated_total",
		Help:      "Total number of successful product updates.",
	},
)

// StockMovementTotal sums the absolute quantity deltas applied by updates.
// Label:
//   - direction: "in" for positive deltas, "out" for negative ones
var StockMovementTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movement_units_total",
		Help:      "Units of stock added or removed through product updates.",
	},
	[]string{"direction"},
)

// ObserveStockDelta records a quantity delta. Zero is skipped, matching the
// update semantics where a zero quantity leaves the stock untouched.
func ObserveStockDelta(delta int) {
	switch {
	case delta > 0:
		StockMovementTotal.WithLabelValues("in").Add(float64(delta))
	case delta < 0:
		StockMovementTotal.WithLabelValues("out").Add(float64(-delta))
	}
}

// ── Account metrics ───────────────────────────────────────────────────────────

// PasswordChangesTotal counts password change attempts.
// Labels:
//   - role: "admin" or "client"
//   - result: "success" or the error kind (e.g. "invalid_credential")
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: "admin" or "client"
//   - result: "success" or the error kind
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)
