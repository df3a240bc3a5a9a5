package model

// ===== API response shapes =====

// PaginatedMetrics is the GET /metrics response.
type PaginatedMetrics struct {
	Items []Metric `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
	Size  int      `json:"size"`
}

// Pagination defaults and bounds shared by the read endpoints.
const (
	DefaultMetricPageSize = 20
	DefaultAlertPageSize  = 50
	MaxPageSize           = 200
)
