package database

import (
	"context"
	"fmt"

	db "github.com/gdk/monitoring/internal/database"
	"github.com/gdk/monitoring/internal/monitoring/model"
)

// AlertStore persists threshold-breach records. Insert-only, like metrics.
type AlertStore struct {
	DB *db.Database
}

func NewAlertStore(database *db.Database) *AlertStore {
	return &AlertStore{DB: database}
}

// Insert stores an alert through the given executor and fills the assigned
// id and creation time.
func (s *AlertStore) Insert(ctx context.Context, ex db.Executor, a *model.Alert) error {
	const q = `
	INSERT INTO alerts (type, value, threshold)
	VALUES ($1, $2, $3)
	RETURNING id, created_at`

	row := ex.QueryRowContext(ctx, q, a.Type, a.Value, a.Threshold)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

// List returns one page of alerts, newest first. No filters.
func (s *AlertStore) List(ctx context.Context, page, size int) ([]model.Alert, error) {
	const q = `
	SELECT id, type, value, threshold, created_at
	FROM alerts
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2`

	rows, err := s.DB.QueryContext(ctx, q, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.Value, &a.Threshold, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}

	return alerts, nil
}
