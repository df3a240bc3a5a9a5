package model

import "time"

// Alert types match the metric field that breached its threshold.
const (
	AlertTypeCPU     = "cpu"
	AlertTypeLatency = "latency"
	AlertTypeMemory  = "memory"
)

// Alert records a single threshold breach. Alerts are immutable and do not
// reference the metric that triggered them; the causal link exists only in
// time order.
type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
}
