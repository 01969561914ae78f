// Package metrics defines and registers the domain Prometheus metrics of the
// health gateway. Metrics are registered with the default registry on import
// and exposed on /metrics next to the per-router HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by the gateway.
const Namespace = "health_gateway"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttempts counts login attempts.
// Labels:
//   - role: the role partition searched
//   - outcome: "success", "not_found", "invalid_credentials" or "error"
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by role and outcome.",
	},
	[]string{"role", "outcome"},
)

// ── Prescription metrics ──────────────────────────────────────────────────────

// PrescriptionUploads counts object storage uploads.
// Label:
//   - result: "stored" or "failed"
var PrescriptionUploads = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "prescription_uploads_total",
		Help:      "Total number of prescription file uploads, by result.",
	},
	[]string{"result"},
)

// PrescriptionUploadBytes observes the size of stored prescription files.
var PrescriptionUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "prescription_upload_bytes",
		Help:      "Size in bytes of stored prescription files.",
		Buckets:   prometheus.ExponentialBuckets(1<<10, 4, 8), // 1KiB … 16MiB
	},
)

// IdempotentReplays counts create requests answered from the idempotency store.
var IdempotentReplays = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests replayed from a stored response.",
	},
)
