package ordering

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicketAttempts is the number of ticket creation attempts by outcome.
	TicketAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ordering_ticket_attempts_total",
			Help: "Total number of ticket creation attempts",
		},
		[]string{"outcome"},
	)

	// TicketsClosed is the number of tickets closed.
	TicketsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ordering_tickets_closed_total",
			Help: "Total number of tickets closed",
		},
	)

	// OrphanedChannels is the number of ticket or order channels left without a record.
	OrphanedChannels = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ordering_orphaned_channels_total",
			Help: "Total number of channels that could not be persisted or cleaned up",
		},
	)

	// ReopenNotifications is the number of reopen DMs by result.
	ReopenNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ordering_reopen_notifications_total",
			Help: "Total number of reopen direct messages",
		},
		[]string{"result"},
	)

	// StatusChanges is the number of store status changes by new status.
	StatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ordering_status_changes_total",
			Help: "Total number of store status changes",
		},
		[]string{"status"},
	)
)
