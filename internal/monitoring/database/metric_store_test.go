package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	db "github.com/gdk/monitoring/internal/database"
	"github.com/gdk/monitoring/internal/monitoring/model"
)

func f(v float64) *float64 { return &v }

func newMockMetricStore(t *testing.T) (*MetricStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	wrapped := db.NewFromDB(sqlDB)
	return NewMetricStore(wrapped), mock
}

func TestMetricInsertAssignsIDAndTimestamp(t *testing.T) {
	store, mock := newMockMetricStore(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO metrics").
		WithArgs(42.5, 120.0, 3600.0, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "timestamp"}).AddRow(11, now))

	m := &model.Metric{CPU: 42.5, Latency: 120, Uptime: 3600}
	if err := store.Insert(context.Background(), store.DB, m); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if m.ID != 11 {
		t.Errorf("metric id = %d, want 11", m.ID)
	}
	if !m.Timestamp.Equal(now) {
		t.Errorf("metric timestamp = %v, want %v", m.Timestamp, now)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMetricListPagination(t *testing.T) {
	store, mock := newMockMetricStore(t)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(55))
	mock.ExpectQuery("SELECT id, cpu, latency, uptime, memory, timestamp FROM metrics").
		WithArgs(20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cpu", "latency", "uptime", "memory", "timestamp"}).
			AddRow(35, 50.0, 100.0, 10.0, nil, now).
			AddRow(34, 51.0, 101.0, 11.0, 70.0, now.Add(-time.Minute)))

	items, total, err := store.List(context.Background(), model.MetricFilter{}, 2, 20)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 55 {
		t.Errorf("total = %d, want 55", total)
	}
	if len(items) != 2 || items[0].ID != 35 || items[1].ID != 34 {
		t.Errorf("items = %+v", items)
	}
	if items[1].Memory == nil || *items[1].Memory != 70 {
		t.Errorf("items[1].Memory = %v, want 70", items[1].Memory)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMetricListAppliesFilters(t *testing.T) {
	store, mock := newMockMetricStore(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(50.0, 90.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id, cpu, latency, uptime, memory, timestamp FROM metrics").
		WithArgs(50.0, 90.0, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cpu", "latency", "uptime", "memory", "timestamp"}).
			AddRow(1, 60.0, 10.0, 1.0, nil, time.Now()))

	filter := model.MetricFilter{MinCPU: f(50), MaxCPU: f(90)}
	items, total, err := store.List(context.Background(), filter, 1, 20)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("total = %d, items = %d, want 1 and 1", total, len(items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBuildMetricFilter(t *testing.T) {
	tests := []struct {
		name      string
		filter    model.MetricFilter
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "no_filters",
			filter:    model.MetricFilter{},
			wantWhere: "",
			wantArgs:  0,
		},
		{
			name:      "cpu_range",
			filter:    model.MetricFilter{MinCPU: f(50), MaxCPU: f(90)},
			wantWhere: " WHERE cpu >= $1 AND cpu <= $2",
			wantArgs:  2,
		},
		{
			name:      "latency_only",
			filter:    model.MetricFilter{MaxLatency: f(500)},
			wantWhere: " WHERE latency <= $1",
			wantArgs:  1,
		},
		{
			name: "all_bounds",
			filter: model.MetricFilter{
				MinCPU: f(10), MaxCPU: f(90), MinLatency: f(5), MaxLatency: f(500),
			},
			wantWhere: " WHERE cpu >= $1 AND cpu <= $2 AND latency >= $3 AND latency <= $4",
			wantArgs:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildMetricFilter(tt.filter)
			if where != tt.wantWhere {
				t.Errorf("where = %q, want %q", where, tt.wantWhere)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}
