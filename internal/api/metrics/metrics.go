// Package metrics defines and registers the custom Prometheus metrics for the
// projethub API. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry at
// init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projethub"

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

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// AuthRejectionsTotal counts rejected requests at the session boundary.
// Label:
//   - reason: "missing", "expired", "invalid", or "bad_credentials"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected with 401, by reason.",
	},
	[]string{"reason"},
)

// ProjetsCreatedTotal counts newly created projets.
var ProjetsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projets_created_total",
		Help:      "Total number of projets created.",
	},
)

// ReviewsCreatedTotal counts newly created reviews.
var ReviewsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created.",
	},
)

// CascadeDeletesTotal counts completed projet deletions, including the review
// purge that precedes each one.
var CascadeDeletesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deletes_total",
		Help:      "Total number of projets deleted together with their reviews.",
	},
)
