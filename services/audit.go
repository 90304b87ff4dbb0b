// services/audit.go
package services

import (
	"context"

	"spalounge-backend/metrics"
	"spalounge-backend/models"

	"go.uber.org/zap"
)

// The datastore caps batched inserts; records are chunked to stay under it.
const auditBatchSize = 1000

type AuditStore interface {
	InsertNotifications(ctx context.Context, records []models.Notification) error
}

// AuditWriter persists in-app notification records in independent chunks.
// A failed chunk is logged and skipped; earlier chunks stay committed and
// later chunks still run.
type AuditWriter struct {
	store AuditStore
	log   *zap.Logger
}

func NewAuditWriter(store AuditStore, log *zap.Logger) *AuditWriter {
	return &AuditWriter{store: store, log: log}
}

// Record writes the records best-effort and returns how many were persisted.
func (w *AuditWriter) Record(ctx context.Context, records []models.Notification) int {
	written := 0
	chunkNo := 0
	for start := 0; start < len(records); start += auditBatchSize {
		chunkNo++
		end := min(start+auditBatchSize, len(records))
		chunk := records[start:end]
		if err := w.store.InsertNotifications(ctx, chunk); err != nil {
			w.log.Error("audit chunk failed",
				zap.Int("chunk", chunkNo),
				zap.Int("size", len(chunk)),
				zap.Error(err))
			metrics.AuditChunksFailed.Inc()
			continue
		}
		written += len(chunk)
	}
	return written
}
