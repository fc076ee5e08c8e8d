package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookshow_login_attempts_total",
			Help: "Login attempts by realm and outcome",
		},
		[]string{"realm", "status"},
	)

	TicketsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshow_tickets_purchased_total",
			Help: "Completed ticket purchases",
		},
	)

	ShowsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookshow_shows_created_total",
			Help: "Shows created by admins",
		},
	)
)
