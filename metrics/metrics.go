package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsAudited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spalounge_notifications_audited_total",
		Help: "In-app notification records written, by notification type.",
	}, []string{"type"})

	PushTicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spalounge_push_tickets_total",
		Help: "Push messages acknowledged by the gateway with a ticket.",
	})

	DeliveryChunksFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spalounge_delivery_chunks_failed_total",
		Help: "Push gateway chunks that failed to send.",
	})

	AuditChunksFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spalounge_audit_chunks_failed_total",
		Help: "Notification record insert chunks that failed.",
	})

	ReminderSweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spalounge_reminder_sweeps_total",
		Help: "Reminder sweep invocations.",
	})

	SMSMessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spalounge_sms_messages_sent_total",
		Help: "Broadcast SMS messages accepted by the SMS provider.",
	})
)
