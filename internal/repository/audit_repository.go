package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/asistnet-backend/internal/model"
)

// AuditRepository stores profile-update audit entries in PostgreSQL.
type AuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Insert writes one entry. Replaying the same entry is a no-op.
func (r *AuditRepository) Insert(ctx context.Context, e *model.ProfileUpdateAudit) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO profile_update_audit (id, request_id, payload, received_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		e.ID, e.RequestID, payload, e.ReceivedAt,
	)
	return err
}
