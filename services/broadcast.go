// services/broadcast.go
package services

import (
	"context"

	"spalounge-backend/metrics"
	"spalounge-backend/models"
	"spalounge-backend/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BroadcastInput is an operator-initiated send. Title, Message and
// TargetType are validated by the handler before the engine sees them.
type BroadcastInput struct {
	Title            string
	Message          string
	TargetType       string
	TargetValue      string
	NotificationType string
	Channel          string // "push" (default) or "sms"
}

type BroadcastResult struct {
	RecipientCount      int `json:"recipientCount"`
	DeliveryTicketCount int `json:"deliveryTicketCount"`
}

type BroadcastService struct {
	resolver *Resolver
	engine   *DispatchService
	sms      SMSSender
	audit    *AuditWriter
	log      *zap.Logger
}

func NewBroadcastService(db *gorm.DB, engine *DispatchService, sms SMSSender, log *zap.Logger) *BroadcastService {
	return &BroadcastService{
		resolver: NewResolver(NewProfileStore(db), NewBookingStore(db), log),
		engine:   engine,
		sms:      sms,
		audit:    NewAuditWriter(NewAuditStore(db), log),
		log:      log,
	}
}

// Broadcast resolves the target segment and runs the dispatch pipeline.
// Broadcast content is literal; there is no per-recipient substitution.
func (s *BroadcastService) Broadcast(ctx context.Context, in BroadcastInput) (BroadcastResult, error) {
	recipients, err := s.resolver.ResolveSegment(ctx, in.TargetType, in.TargetValue)
	if err != nil {
		return BroadcastResult{}, err
	}

	if in.Channel == "sms" {
		return s.broadcastSMS(ctx, in, recipients), nil
	}

	res := s.engine.Dispatch(ctx, DispatchRequest{
		Title:            in.Title,
		Body:             in.Message,
		NotificationType: in.NotificationType,
		Payload:          map[string]interface{}{"type": in.NotificationType},
		Recipients:       recipients,
	})
	return BroadcastResult{
		RecipientCount:      res.RecipientCount,
		DeliveryTicketCount: res.TicketCount,
	}, nil
}

// broadcastSMS delivers the same segment over SMS instead of push. Each
// message is sent individually; a provider failure for one recipient is
// logged and the loop continues. The in-app audit trail is written the
// same way as for push.
func (s *BroadcastService) broadcastSMS(ctx context.Context, in BroadcastInput, recipients []Recipient) BroadcastResult {
	notificationType := in.NotificationType
	if notificationType == "" {
		notificationType = TypePromotionalOffer
	}

	sent := 0
	var records []models.Notification
	for _, rec := range dedupRecipients(recipients) {
		if !ShouldNotify(rec.Profile, notificationType) {
			continue
		}
		records = append(records, models.Notification{
			UserID:  rec.Profile.ID,
			Title:   in.Title,
			Message: in.Message,
			Type:    notificationType,
		})
		if !utils.ValidatePhone(rec.Profile.Phone) {
			continue
		}
		sid, err := s.sms.Send(ctx, rec.Profile.Phone, in.Message)
		if err != nil {
			s.log.Error("sms send failed",
				zap.String("user", rec.Profile.ID.String()),
				zap.Error(err))
			continue
		}
		sent++
		metrics.SMSMessagesSent.Inc()
		s.log.Debug("sms sent", zap.String("sid", sid))
	}

	written := s.audit.Record(ctx, records)
	metrics.NotificationsAudited.WithLabelValues(notificationType).Add(float64(written))

	return BroadcastResult{
		RecipientCount:      len(records),
		DeliveryTicketCount: sent,
	}
}
