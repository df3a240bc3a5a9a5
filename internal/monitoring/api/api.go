package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gdk/monitoring/internal/middleware"
	"github.com/gdk/monitoring/internal/monitoring/database"
	"github.com/gdk/monitoring/internal/monitoring/model"
	"github.com/gdk/monitoring/internal/monitoring/service"
)

// Api wires the metric and alert endpoints.
type Api struct {
	ingest  *service.IngestService
	metrics *database.MetricStore
	alerts  *database.AlertStore
}

func NewApi(ingest *service.IngestService, metrics *database.MetricStore, alerts *database.AlertStore, router *gin.Engine, tokens middleware.TokenVerifier) *Api {
	api := &Api{ingest: ingest, metrics: metrics, alerts: alerts}
	api.setupRouters(router, tokens)
	return api
}

func (api *Api) setupRouters(router *gin.Engine, tokens middleware.TokenVerifier) {
	router.GET("/", api.Home)
	router.GET("/health", api.Health)

	authed := router.Group("/", middleware.RequireAuth(tokens))
	authed.POST("/metrics", api.CreateMetric)
	authed.GET("/metrics", api.ListMetrics)
	authed.GET("/alerts", api.ListAlerts)
}

// Health is the unauthenticated liveness probe (GET /health).
func (api *Api) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const homePage = `<!doctype html>
<html lang="en"><head><meta charset="utf-8"><title>Cloud Monitoring</title></head>
<body>
<h1>Cloud Monitoring API</h1>
<p>Collects CPU, latency, uptime and memory samples and raises threshold alerts.</p>
<p>See <a href="/health">/health</a> for liveness.</p>
</body></html>
`

// Home serves the static informational page (GET /).
func (api *Api) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

// ===== shared query parsing helpers =====

// parsePage reads the 1-based page parameter. Zero or negative is invalid.
func parsePage(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		c.JSON(http.StatusUnprocessableEntity, model.NewFieldError("page", "page must be an integer >= 1"))
		return 0, false
	}
	return page, true
}

// parseSize reads the page size parameter, bounded to [1,200].
func parseSize(c *gin.Context, defaultSize int) (int, bool) {
	raw := c.DefaultQuery("size", strconv.Itoa(defaultSize))
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 || size > model.MaxPageSize {
		c.JSON(http.StatusUnprocessableEntity, model.NewFieldError("size", "size must be an integer in [1,200]"))
		return 0, false
	}
	return size, true
}

// parseOptionalFloat reads an optional float query parameter. Absence is
// not an error; a malformed value is.
func parseOptionalFloat(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, model.NewFieldError(name, name+" must be a number"))
		return nil, false
	}
	return &v, true
}
