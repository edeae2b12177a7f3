// Package metrics defines and registers all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully provisioned accounts.
// Label:
//   - role: the account variant ("USER", "ADMIN", "VENDOR", "DELIVERY_MAN")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts provisioned, by role.",
	},
	[]string{"role"},
)

// RegistrationErrorsTotal counts failed registration attempts.
// Label:
//   - reason: "validation", "duplicate" or "storage"
var RegistrationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_errors_total",
		Help:      "Total number of registration attempts that failed, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
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

// VerificationEmailsTotal counts email-verification tokens issued.
var VerificationEmailsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verification_emails_total",
		Help:      "Total number of email-verification tokens issued.",
	},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDeniedTotal counts requests rejected at a role boundary.
// Label:
//   - kind: "unauthenticated" or "forbidden"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied at a role boundary, by kind.",
	},
	[]string{"kind"},
)

// ── Notification pipeline metrics ─────────────────────────────────────────────

// NotifyDroppedTotal counts account events discarded because a dispatcher
// worker's buffer was full.
var NotifyDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notify_dropped_total",
		Help:      "Total number of account events dropped due to a full worker buffer.",
	},
)

// NotifyQueueDepth tracks the current number of account events waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotifyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notify_queue_depth",
		Help:      "Current number of account events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
