// Package metrics defines the Prometheus metrics of the cargo console. It is
// the single source of truth for metric names, labels and help strings.
//
// All metrics register with the default registry on import (promauto) and
// are served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cargo_console"

// ── Gateway metrics ───────────────────────────────────────────────────────────

// GatewayRequestsTotal counts requests sent to the cargo API.
// Labels:
//   - method: HTTP method (e.g. "GET", "PUT")
//   - status: response status code, or "error" for transport failures
var GatewayRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Total number of requests sent to the cargo API.",
	},
	[]string{"method", "status"},
)

// GatewayRequestDuration measures round-trip latency to the cargo API.
// Label:
//   - method: HTTP method
var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Duration of requests to the cargo API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// TokenRefreshTotal counts refresh-hook invocations after a 401.
// Label:
//   - result: "ok" or "failed"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access token refresh attempts, by result.",
	},
	[]string{"result"},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts export requests.
// Labels:
//   - resource: e.g. "ships", "clients"
//   - format: "csv" or "xlsx"
//   - result: "ok", "empty" or "error"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of table exports, by resource, format and result.",
	},
	[]string{"resource", "format", "result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of console login attempts, by result.",
	},
	[]string{"result"},
)
