// Package metrics defines the custom Prometheus metrics for the expenses API.
// It is the single source of truth for metric names, labels, and help strings;
// registration happens via promauto against the default registry, which the
// /metrics endpoint exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expenses"

// UsersCreatedTotal counts users created over the process lifetime.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// ExpensesCreatedTotal counts created expenses.
// Label:
//   - category: the free-form category label supplied by the client
var ExpensesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses created, by category.",
	},
	[]string{"category"},
)

// ExpensesDeletedTotal counts deleted expenses.
var ExpensesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_deleted_total",
		Help:      "Total number of expenses deleted.",
	},
)

// ValidationFailuresTotal counts rejected mutations.
// Label:
//   - resource: "user" or "expense"
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of mutations rejected by input validation.",
	},
	[]string{"resource"},
)
