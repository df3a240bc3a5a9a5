package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// Telemetry records a counter and latency histogram per route. The route
// template (c.FullPath) is used as the endpoint label to keep cardinality
// bounded.
func Telemetry(c *gin.Context) {
	start := time.Now()
	c.Next()

	endpoint := c.FullPath()
	if endpoint == "" {
		endpoint = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())

	httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
}

// TelemetryHandler exposes the Prometheus registry. Mounted away from the
// /metrics data endpoint.
func TelemetryHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
