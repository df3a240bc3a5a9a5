package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gdk/monitoring/internal/monitoring/model"
)

type metricPayload struct {
	CPU       *float64   `json:"cpu"`
	Latency   *float64   `json:"latency"`
	Uptime    *float64   `json:"uptime"`
	Memory    *float64   `json:"memory"`
	Timestamp *time.Time `json:"timestamp"`
}

// validate checks presence and bounds. Returns the offending field and a
// message on failure.
func (p *metricPayload) validate() (string, string, bool) {
	switch {
	case p.CPU == nil:
		return "cpu", "cpu is required", false
	case *p.CPU < 0 || *p.CPU > 100:
		return "cpu", "cpu must be in [0,100]", false
	case p.Latency == nil:
		return "latency", "latency is required", false
	case *p.Latency < 0:
		return "latency", "latency must be >= 0", false
	case p.Uptime == nil:
		return "uptime", "uptime is required", false
	case *p.Uptime < 0:
		return "uptime", "uptime must be >= 0", false
	case p.Memory != nil && (*p.Memory < 0 || *p.Memory > 100):
		return "memory", "memory must be in [0,100]", false
	}
	return "", "", true
}

// CreateMetric ingests one sample (POST /metrics). Validation happens
// before any persistence; the metric and any triggered alerts commit
// atomically.
func (api *Api) CreateMetric(c *gin.Context) {
	var payload metricPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, model.NewError(model.ErrorCodeValidation, "invalid JSON body"))
		return
	}

	if field, msg, ok := payload.validate(); !ok {
		c.JSON(http.StatusUnprocessableEntity, model.NewFieldError(field, msg))
		return
	}

	metric := &model.Metric{
		CPU:     *payload.CPU,
		Latency: *payload.Latency,
		Uptime:  *payload.Uptime,
		Memory:  payload.Memory,
	}
	if payload.Timestamp != nil {
		metric.Timestamp = *payload.Timestamp
	}

	stored, _, err := api.ingest.Ingest(c.Request.Context(), metric)
	if err != nil {
		log.Error().Err(err).Msg("metric ingestion failed")
		c.JSON(http.StatusInternalServerError, model.NewError(model.ErrorCodeInternal, "internal server error"))
		return
	}

	c.JSON(http.StatusOK, stored)
}

// ListMetrics returns one page of samples, newest first (GET /metrics).
func (api *Api) ListMetrics(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	size, ok := parseSize(c, model.DefaultMetricPageSize)
	if !ok {
		return
	}

	var filter model.MetricFilter
	if filter.MinCPU, ok = parseOptionalFloat(c, "min_cpu"); !ok {
		return
	}
	if filter.MaxCPU, ok = parseOptionalFloat(c, "max_cpu"); !ok {
		return
	}
	if filter.MinLatency, ok = parseOptionalFloat(c, "min_latency"); !ok {
		return
	}
	if filter.MaxLatency, ok = parseOptionalFloat(c, "max_latency"); !ok {
		return
	}

	items, total, err := api.metrics.List(c.Request.Context(), filter, page, size)
	if err != nil {
		log.Error().Err(err).Msg("failed to list metrics")
		c.JSON(http.StatusInternalServerError, model.NewError(model.ErrorCodeInternal, "internal server error"))
		return
	}

	c.JSON(http.StatusOK, model.PaginatedMetrics{Items: items, Total: total, Page: page, Size: size})
}
