package database

import (
	"context"
	"fmt"
	"strconv"

	db "github.com/gdk/monitoring/internal/database"
	"github.com/gdk/monitoring/internal/monitoring/model"
)

// MetricStore persists metric samples. Samples are insert-only; there is
// no update or delete path.
type MetricStore struct {
	DB *db.Database
}

func NewMetricStore(database *db.Database) *MetricStore {
	return &MetricStore{DB: database}
}

// Insert stores a metric through the given executor and fills the assigned
// id and timestamp. Passing the transaction from Database.WithTx keeps the
// metric insert and any alert inserts in one atomic unit.
func (s *MetricStore) Insert(ctx context.Context, ex db.Executor, m *model.Metric) error {
	if m.Timestamp.IsZero() {
		const q = `
		INSERT INTO metrics (cpu, latency, uptime, memory)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp`
		row := ex.QueryRowContext(ctx, q, m.CPU, m.Latency, m.Uptime, m.Memory)
		if err := row.Scan(&m.ID, &m.Timestamp); err != nil {
			return fmt.Errorf("failed to insert metric: %w", err)
		}
		return nil
	}

	const q = `
	INSERT INTO metrics (cpu, latency, uptime, memory, timestamp)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, timestamp`
	row := ex.QueryRowContext(ctx, q, m.CPU, m.Latency, m.Uptime, m.Memory, m.Timestamp)
	if err := row.Scan(&m.ID, &m.Timestamp); err != nil {
		return fmt.Errorf("failed to insert metric: %w", err)
	}
	return nil
}

// List returns one page of metrics matching the filter, newest first, plus
// the total match count before pagination.
func (s *MetricStore) List(ctx context.Context, filter model.MetricFilter, page, size int) ([]model.Metric, int, error) {
	where, args := buildMetricFilter(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM metrics` + where
	if err := s.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count metrics: %w", err)
	}

	query := `SELECT id, cpu, latency, uptime, memory, timestamp FROM metrics` + where +
		` ORDER BY timestamp DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, size, (page-1)*size)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list metrics: %w", err)
	}
	defer rows.Close()

	metrics := []model.Metric{}
	for rows.Next() {
		var m model.Metric
		if err := rows.Scan(&m.ID, &m.CPU, &m.Latency, &m.Uptime, &m.Memory, &m.Timestamp); err != nil {
			return nil, 0, fmt.Errorf("failed to scan metric: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read metrics: %w", err)
	}

	return metrics, total, nil
}

// buildMetricFilter assembles the WHERE clause with positional args. All
// bounds are inclusive and combined with AND.
func buildMetricFilter(filter model.MetricFilter) (string, []any) {
	where := ""
	args := []any{}

	add := func(cond string, v *float64) {
		if v == nil {
			return
		}
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += cond + "$" + strconv.Itoa(len(args)+1)
		args = append(args, *v)
	}

	add("cpu >= ", filter.MinCPU)
	add("cpu <= ", filter.MaxCPU)
	add("latency >= ", filter.MinLatency)
	add("latency <= ", filter.MaxLatency)

	return where, args
}
