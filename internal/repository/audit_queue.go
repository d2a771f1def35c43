package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/metrics"
	"github.com/stemsi/asistnet-backend/internal/model"
)

// AuditQueue pushes profile-update audit entries onto a Redis list for the
// audit worker to persist.
type AuditQueue struct {
	rdb     *redis.Client
	key     string
	metrics *metrics.Metrics
}

// NewAuditQueue creates an AuditQueue on the default audit list.
func NewAuditQueue(rdb *redis.Client, m *metrics.Metrics) *AuditQueue {
	return &AuditQueue{rdb: rdb, key: config.QueueKey.ProfileUpdateAudit, metrics: m}
}

// Enqueue appends the entry to the tail of the audit list.
func (q *AuditQueue) Enqueue(ctx context.Context, entry *model.ProfileUpdateAudit) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	if err := q.rdb.RPush(ctx, q.key, raw).Err(); err != nil {
		return fmt.Errorf("push audit entry: %w", err)
	}
	q.metrics.AuditQueued.Inc()
	return nil
}
