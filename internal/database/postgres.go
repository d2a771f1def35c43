package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stemsi/asistnet-backend/internal/config"
)

const (
	auditAppName     = "asistnet-audit"
	auditIdleTimeout = 5 * time.Minute
	connectTimeout   = 5 * time.Second
)

// NewPostgresPool opens the pool used by the audit worker. The worker inserts
// one row at a time, so one warm connection is kept and the rest are allowed
// to idle out.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxDBConns
	poolCfg.MinConns = 1
	poolCfg.MaxConnIdleTime = auditIdleTimeout
	poolCfg.ConnConfig.RuntimeParams["application_name"] = auditAppName

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create audit pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping audit database: %w", err)
	}

	log.Info().
		Int32("max_conns", poolCfg.MaxConns).
		Str("database", poolCfg.ConnConfig.Database).
		Str("application_name", auditAppName).
		Msg("Audit store connected")
	return pool, nil
}
