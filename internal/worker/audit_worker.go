package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/metrics"
	"github.com/stemsi/asistnet-backend/internal/model"
)

const (
	popTimeout     = time.Second
	retryBackoff   = 5 * time.Second
	requeueTimeout = 2 * time.Second
)

// AuditStore persists decoded audit entries.
type AuditStore interface {
	Insert(ctx context.Context, e *model.ProfileUpdateAudit) error
}

// queueClient is the subset of the Redis client the worker uses.
type queueClient interface {
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	LPop(ctx context.Context, key string) *redis.StringCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// AuditWorker consumes the profile-update audit queue and writes each entry
// to PostgreSQL.
type AuditWorker struct {
	rdb     queueClient
	store   AuditStore
	metrics *metrics.Metrics
	log     zerolog.Logger
	queue   string
}

// NewAuditWorker creates a new AuditWorker.
func NewAuditWorker(rdb *redis.Client, store AuditStore, m *metrics.Metrics, log zerolog.Logger) *AuditWorker {
	return &AuditWorker{
		rdb:     rdb,
		store:   store,
		metrics: m,
		log:     log.With().Str("component", "audit_worker").Logger(),
		queue:   config.QueueKey.ProfileUpdateAudit,
	}
}

// Start runs the worker loop until ctx is cancelled, then drains what is
// left on the queue. Call in a goroutine.
func (w *AuditWorker) Start(ctx context.Context) {
	w.log.Info().Str("queue", w.queue).Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *AuditWorker) processNext(ctx context.Context) {
	result, err := w.rdb.BLPop(ctx, popTimeout, w.queue).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
			sleepCtx(ctx, popTimeout)
		}
		return
	}
	if len(result) < 2 {
		return
	}

	if err := w.handle(ctx, result[1]); err != nil {
		w.log.Error().Err(err).Msg("Persist error, retrying in 5s")
		w.requeue(result[1])
		sleepCtx(ctx, retryBackoff)
	}
}

// handle decodes and stores one raw queue item. Items that can never be
// stored (undecodable, or rejected by a data or constraint check) are logged
// and dropped; other failures are returned so the caller can requeue.
func (w *AuditWorker) handle(ctx context.Context, raw string) error {
	entry, err := decodeEntry(raw)
	if err != nil {
		w.log.Error().Err(err).Str("raw", raw).Msg("Dropping malformed audit entry")
		return nil
	}
	if err := w.store.Insert(ctx, entry); err != nil {
		if isPermanent(err) {
			w.log.Error().Err(err).Str("id", entry.ID.String()).Str("raw", raw).Msg("Dropping rejected audit entry")
			return nil
		}
		return fmt.Errorf("insert audit %s: %w", entry.ID, err)
	}
	w.metrics.AuditStored.Inc()
	return nil
}

// requeue puts raw back on the tail of the queue. It runs on its own context
// so an item popped just before shutdown is not lost.
func (w *AuditWorker) requeue(raw string) {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()
	if err := w.rdb.RPush(ctx, w.queue, raw).Err(); err != nil {
		w.log.Error().Err(err).Str("raw", raw).Msg("Requeue failed, audit entry lost")
	}
}

// drain processes all remaining items in the queue before shutdown.
func (w *AuditWorker) drain(ctx context.Context) {
	drained := 0
	for {
		raw, err := w.rdb.LPop(ctx, w.queue).Result()
		if err != nil {
			break
		}
		if err := w.handle(ctx, raw); err != nil {
			w.log.Error().Err(err).Msg("Drain persist error")
			w.requeue(raw)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}

// isPermanent reports whether Postgres rejected the row itself: SQLSTATE
// class 22 (data exception) or 23 (integrity constraint violation).
func isPermanent(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	switch pgErr.Code[:2] {
	case "22", "23":
		return true
	}
	return false
}

func decodeEntry(raw string) (*model.ProfileUpdateAudit, error) {
	var e model.ProfileUpdateAudit
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if e.ReceivedAt.IsZero() {
		return nil, errors.New("missing received_at")
	}
	return &e, nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
