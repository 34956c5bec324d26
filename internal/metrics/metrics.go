package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClaimsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claimit_claims_created_total",
		Help: "Total number of claim requests successfully created.",
	})

	ItemsArchivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claimit_items_archived_total",
		Help: "Total number of items moved to ARCHIVED.",
	})

	RemindersSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claimit_expiration_reminders_total",
		Help: "Total number of expiration reminders sent, by days-left threshold.",
	},
		[]string{"days_left"},
	)

	NotificationsEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claimit_notifications_enqueued_total",
		Help: "Total number of notifications written to the outbox.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claimit_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
