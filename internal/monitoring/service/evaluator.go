package service

import (
	"github.com/gdk/monitoring/internal/config"
	"github.com/gdk/monitoring/internal/monitoring/model"
)

// Thresholds are the static limits a sample is checked against. Breach
// means strictly greater than the limit; equality does not alert.
type Thresholds struct {
	CPU       float64
	LatencyMS float64
	Memory    float64
}

// ThresholdsFromConfig copies the startup configuration into the explicit
// struct the evaluator works with.
func ThresholdsFromConfig(c config.ThresholdConfig) Thresholds {
	return Thresholds{CPU: c.CPU, LatencyMS: c.LatencyMS, Memory: c.Memory}
}

// Evaluate checks one metric against the thresholds and returns the alerts
// to raise, in the fixed order cpu, latency, memory. Each field is checked
// independently, so a single sample can produce up to three alerts. A nil
// memory value never alerts. There is no hysteresis or deduplication:
// every breaching sample raises a fresh alert.
func Evaluate(m *model.Metric, t Thresholds) []model.Alert {
	var alerts []model.Alert

	if m.CPU > t.CPU {
		alerts = append(alerts, model.Alert{Type: model.AlertTypeCPU, Value: m.CPU, Threshold: t.CPU})
	}
	if m.Latency > t.LatencyMS {
		alerts = append(alerts, model.Alert{Type: model.AlertTypeLatency, Value: m.Latency, Threshold: t.LatencyMS})
	}
	if m.Memory != nil && *m.Memory > t.Memory {
		alerts = append(alerts, model.Alert{Type: model.AlertTypeMemory, Value: *m.Memory, Threshold: t.Memory})
	}

	return alerts
}
