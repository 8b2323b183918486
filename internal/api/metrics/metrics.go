// Package metrics defines and registers all custom Prometheus metrics for
// the user management API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "duplicate_email", "invalid" (rejected input),
//     or "error" (store or other internal failure)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. Unknown email and wrong password are
// deliberately the same "failure" result.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (success/failure).",
	},
	[]string{"result"},
)

// AuthenticationsTotal counts bearer-token resolutions on protected routes.
// Label:
//   - result: "ok" or "unauthorized"
var AuthenticationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authentications_total",
		Help:      "Total number of bearer token authentications, by result.",
	},
	[]string{"result"},
)

// AdminOpsTotal counts administrative operations.
// Labels:
//   - operation: "list", "update", or "delete"
//   - result:    "ok" or "error"
var AdminOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_ops_total",
		Help:      "Total number of administrative operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// PasswordHashDuration measures the latency of a single bcrypt computation,
// including any time spent queued behind the hasher's concurrency cap.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of bcrypt hash and verify operations.",
		Buckets:   prometheus.DefBuckets,
	},
)
