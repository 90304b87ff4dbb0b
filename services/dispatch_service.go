// services/dispatch_service.go
package services

import (
	"context"

	"spalounge-backend/metrics"
	"spalounge-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DispatchRequest is the unit of work both trigger sources feed into the
// engine. Recipients are candidates: the engine dedups them, applies the
// preference filter, composes per-recipient content, batch-delivers and
// writes the audit trail.
type DispatchRequest struct {
	Title            string
	Body             string
	NotificationType string
	Payload          map[string]interface{}
	Recipients       []Recipient
}

type DispatchResult struct {
	RecipientCount int
	TicketCount    int
	FailedChunks   int
	AuditWritten   int
}

type DispatchService struct {
	batcher *DeliveryBatcher
	audit   *AuditWriter
	log     *zap.Logger
}

func NewDispatchService(gateway PushGateway, auditStore AuditStore, log *zap.Logger) *DispatchService {
	return &DispatchService{
		batcher: NewDeliveryBatcher(gateway, log),
		audit:   NewAuditWriter(auditStore, log),
		log:     log,
	}
}

// Dispatch runs the pipeline for one request. Every recipient that passes
// the preference filter gets an audit record, whether or not their push
// ticket later reports failure; only recipients with a device token appear
// in the delivery batch. An empty recipient set is a successful zero-count
// dispatch.
func (s *DispatchService) Dispatch(ctx context.Context, req DispatchRequest) DispatchResult {
	notificationType := req.NotificationType
	if notificationType == "" {
		notificationType = TypePromotionalOffer
	}

	recipients := dedupRecipients(req.Recipients)

	var (
		messages []PushMessage
		records  []models.Notification
	)
	for _, rec := range recipients {
		if !ShouldNotify(rec.Profile, notificationType) {
			continue
		}
		title, body := Compose(req.Title, req.Body, rec.Context)
		records = append(records, models.Notification{
			UserID:  rec.Profile.ID,
			Title:   title,
			Message: body,
			Type:    notificationType,
		})
		if rec.Profile.HasPushToken() {
			messages = append(messages, PushMessage{
				To:    *rec.Profile.PushToken,
				Title: title,
				Body:  body,
				Data:  mergeData(req.Payload, rec.Data),
			})
		}
	}

	report := s.batcher.Deliver(ctx, messages)
	written := s.audit.Record(ctx, records)
	metrics.NotificationsAudited.WithLabelValues(notificationType).Add(float64(written))

	s.log.Info("dispatch complete",
		zap.String("type", notificationType),
		zap.Int("recipients", len(records)),
		zap.Int("tickets", len(report.Tickets)),
		zap.Int("failedChunks", len(report.FailedChunks)))

	return DispatchResult{
		RecipientCount: len(records),
		TicketCount:    len(report.Tickets),
		FailedChunks:   len(report.FailedChunks),
		AuditWritten:   written,
	}
}

// dedupRecipients keeps the first occurrence per profile id so a user who
// matched twice is not double-sent within one dispatch.
func dedupRecipients(recipients []Recipient) []Recipient {
	seen := make(map[uuid.UUID]bool, len(recipients))
	out := make([]Recipient, 0, len(recipients))
	for _, r := range recipients {
		if seen[r.Profile.ID] {
			continue
		}
		seen[r.Profile.ID] = true
		out = append(out, r)
	}
	return out
}

func mergeData(base, override map[string]interface{}) map[string]interface{} {
	if base == nil && override == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
