package database

import (
	"context"
	"fmt"
)

// Schema statements are idempotent so startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      VARCHAR(100) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(50) NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS metrics (
		id        SERIAL PRIMARY KEY,
		cpu       DOUBLE PRECISION NOT NULL,
		latency   DOUBLE PRECISION NOT NULL,
		uptime    DOUBLE PRECISION NOT NULL,
		memory    DOUBLE PRECISION,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_metrics_timestamp ON metrics (timestamp)`,
	`CREATE TABLE IF NOT EXISTS alerts (
		id         SERIAL PRIMARY KEY,
		type       VARCHAR(50) NOT NULL,
		value      DOUBLE PRECISION NOT NULL,
		threshold  DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts (created_at)`,
}

// EnsureSchema creates the users, metrics and alerts tables when missing.
func (d *Database) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
