package model

import "time"

// Metric is a single submitted sample. Metrics are immutable once stored
// and carry no owner: samples are anonymous by design.
type Metric struct {
	ID        int       `json:"id"`
	CPU       float64   `json:"cpu"`
	Latency   float64   `json:"latency"`
	Uptime    float64   `json:"uptime"`
	Memory    *float64  `json:"memory"`
	Timestamp time.Time `json:"timestamp"`
}

// MetricFilter holds the optional inclusive bounds of GET /metrics.
// All set bounds are combined with AND semantics.
type MetricFilter struct {
	MinCPU     *float64
	MaxCPU     *float64
	MinLatency *float64
	MaxLatency *float64
}
