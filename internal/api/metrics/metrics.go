// Package metrics defines and registers all custom Prometheus metrics for
// the account gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package init; expose them by
// mounting promhttp on the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "account_gateway"

// RequestErrorsTotal counts every request that finished in the error
// handler, by taxonomy kind.
// Label:
//   - kind: "business", "not_found", "method_not_allowed",
//     "unauthenticated", "validation" or "internal"
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of requests rejected or failed, by error kind.",
	},
	[]string{"kind"},
)

// AuthFailuresTotal counts requests the auth gate refused before the
// handler ran.
// Label:
//   - reason: "missing_header", "malformed_header" or "invalid_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests refused by the authentication gate.",
	},
	[]string{"reason"},
)

// RPCClientErrorsTotal counts failed calls to the user-service backend.
// Label:
//   - code: the gRPC status code string (e.g. "Unavailable")
var RPCClientErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_client_errors_total",
		Help:      "Total number of backend RPC calls that returned an error.",
	},
	[]string{"code"},
)

// RequestDuration observes wall time per route.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)
