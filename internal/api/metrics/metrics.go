// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "inactive" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "email_taken" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenRotationsTotal counts refresh-token rotations.
// Label:
//   - result: "success" or "rejected"
var TokenRotationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rotations_total",
		Help:      "Total number of refresh token rotations, by result.",
	},
	[]string{"result"},
)

// SessionsSweptTotal counts refresh sessions removed by the janitor.
var SessionsSweptTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_swept_total",
		Help:      "Total number of expired refresh sessions removed by the background sweep.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ImageUploadsTotal counts product image uploads.
// Label:
//   - result: "success", "rejected" or "error"
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of product image uploads, by result.",
	},
	[]string{"result"},
)

// DashboardCacheTotal counts dashboard stat lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard stats cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
