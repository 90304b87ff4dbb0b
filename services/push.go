// services/push.go
package services

import (
	"context"

	"spalounge-backend/metrics"

	"go.uber.org/zap"
)

// PushMessage is one message handed to the push gateway.
type PushMessage struct {
	To    string
	Title string
	Body  string
	Data  map[string]interface{}
}

// PushTicket is the gateway's acknowledgment that it accepted a message for
// delivery. It is not confirmation the device received anything.
type PushTicket struct {
	ID     string
	Status string
}

// PushGateway is the narrow contract of the external push provider: it owns
// the token format and the maximum batch size.
type PushGateway interface {
	IsValidToken(token string) bool
	ChunkLimit() int
	SendBatch(ctx context.Context, messages []PushMessage) ([]PushTicket, error)
}

// DeliveryReport aggregates one delivery run.
type DeliveryReport struct {
	Tickets       []PushTicket
	FailedChunks  []int // 1-based chunk numbers that errored
	InvalidTokens int
}

// DeliveryBatcher splits messages into gateway-sized chunks and sends them
// sequentially with per-chunk isolation: one failed chunk never aborts the
// rest, and nothing is retried within a run.
type DeliveryBatcher struct {
	gateway PushGateway
	log     *zap.Logger
}

func NewDeliveryBatcher(gateway PushGateway, log *zap.Logger) *DeliveryBatcher {
	return &DeliveryBatcher{gateway: gateway, log: log}
}

func (b *DeliveryBatcher) Deliver(ctx context.Context, messages []PushMessage) DeliveryReport {
	var report DeliveryReport

	valid := make([]PushMessage, 0, len(messages))
	for _, m := range messages {
		if !b.gateway.IsValidToken(m.To) {
			report.InvalidTokens++
			continue
		}
		valid = append(valid, m)
	}
	if report.InvalidTokens > 0 {
		b.log.Warn("rejected messages with malformed push tokens",
			zap.Int("count", report.InvalidTokens))
	}

	limit := b.gateway.ChunkLimit()
	if limit < 1 {
		limit = 1
	}

	chunkNo := 0
	for start := 0; start < len(valid); start += limit {
		chunkNo++
		end := min(start+limit, len(valid))
		tickets, err := b.gateway.SendBatch(ctx, valid[start:end])
		if err != nil {
			b.log.Error("push chunk failed",
				zap.Int("chunk", chunkNo),
				zap.Int("size", end-start),
				zap.Error(err))
			metrics.DeliveryChunksFailed.Inc()
			report.FailedChunks = append(report.FailedChunks, chunkNo)
			continue
		}
		report.Tickets = append(report.Tickets, tickets...)
	}

	metrics.PushTicketsIssued.Add(float64(len(report.Tickets)))
	return report
}
