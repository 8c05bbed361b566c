// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// InvestmentsCreatedTotal counts newly recorded investments.
// Label:
//   - asset_type: "Startup", "CryptoFund", "Farmland", "Collectible", "Other"
var InvestmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_created_total",
		Help:      "Total number of investments created, by asset type.",
	},
	[]string{"asset_type"},
)

// InvestmentsDeletedTotal counts soft-deleted investments.
var InvestmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_deleted_total",
		Help:      "Total number of investments soft-deleted.",
	},
)

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SummaryCacheTotal counts portfolio-summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var SummaryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_cache_total",
		Help:      "Total number of summary cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// SimulationsTotal counts what-if simulation requests served.
var SimulationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulations_total",
		Help:      "Total number of portfolio simulations served.",
	},
)
