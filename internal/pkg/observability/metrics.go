// Package observability exposes the service's Prometheus metrics.
// Counters cover the planning and delivery lifecycle; gauges track the
// order backlog sampled by the background jobs.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansRequested counts delivery plan requests received from robots.
	PlansRequested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "robodelivery_plans_requested_total",
		Help: "Number of delivery plan requests received.",
	})

	// OrdersDispatched counts orders committed to out-for-delivery status.
	OrdersDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "robodelivery_orders_dispatched_total",
		Help: "Number of orders committed into delivery plans.",
	})

	// OrdersDelivered counts orders reported as delivered.
	OrdersDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "robodelivery_orders_delivered_total",
		Help: "Number of orders marked delivered.",
	})

	// PlanConflicts counts orders selected by the planner but lost to a
	// concurrent plan request before commit.
	PlanConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "robodelivery_plan_conflicts_total",
		Help: "Number of planner selections dropped after losing the status update race.",
	})

	// OrdersByStatus tracks the current number of orders per lifecycle
	// status. Sampled periodically by the backlog monitor job.
	OrdersByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "robodelivery_orders_by_status",
		Help: "Current number of orders per status.",
	}, []string{"status"})
)
