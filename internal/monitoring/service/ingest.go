package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/rs/zerolog/log"

	db "github.com/gdk/monitoring/internal/database"
	"github.com/gdk/monitoring/internal/monitoring/model"
)

// MetricInserter and AlertInserter are the store dependencies of ingestion.
type MetricInserter interface {
	Insert(ctx context.Context, ex db.Executor, m *model.Metric) error
}

type AlertInserter interface {
	Insert(ctx context.Context, ex db.Executor, a *model.Alert) error
}

// IngestService orchestrates the write path: persist the metric, evaluate
// thresholds, persist any alerts, all inside one transaction.
type IngestService struct {
	db         *db.Database
	metrics    MetricInserter
	alerts     AlertInserter
	thresholds Thresholds
}

func NewIngestService(database *db.Database, metrics MetricInserter, alerts AlertInserter, thresholds Thresholds) *IngestService {
	return &IngestService{db: database, metrics: metrics, alerts: alerts, thresholds: thresholds}
}

// Ingest stores the metric and the alerts it triggers as a single atomic
// unit. The returned metric carries its assigned id and timestamp. Partial
// state is never observable: if any insert fails the whole transaction
// rolls back.
func (s *IngestService) Ingest(ctx context.Context, m *model.Metric) (*model.Metric, []model.Alert, error) {
	var triggered []model.Alert

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := s.metrics.Insert(ctx, tx, m); err != nil {
			return err
		}

		for _, alert := range Evaluate(m, s.thresholds) {
			if err := s.alerts.Insert(ctx, tx, &alert); err != nil {
				return err
			}
			triggered = append(triggered, alert)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if len(triggered) > 0 {
		types := make([]string, 0, len(triggered))
		for _, a := range triggered {
			types = append(types, a.Type)
		}
		entry := log.Warn().
			Str("alerts_triggered", strings.Join(types, ",")).
			Int("metric_id", m.ID).
			Float64("cpu", m.CPU).
			Float64("latency", m.Latency)
		if m.Memory != nil {
			entry = entry.Float64("memory", *m.Memory)
		}
		entry.Msg("metric breached thresholds")
	}

	return m, triggered, nil
}
