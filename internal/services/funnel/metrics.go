package funnel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	plansDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "funnel_plans_delivered_total",
		Help: "Number of free meal plans delivered, by user status.",
	}, []string{"user_status"})

	requestsBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "funnel_requests_blocked_total",
		Help: "Number of quiz submissions blocked by the freemium gate.",
	})
)
