package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gdk/monitoring/internal/monitoring/model"
)

// ListAlerts returns one page of alerts, newest first (GET /alerts).
func (api *Api) ListAlerts(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}
	size, ok := parseSize(c, model.DefaultAlertPageSize)
	if !ok {
		return
	}

	alerts, err := api.alerts.List(c.Request.Context(), page, size)
	if err != nil {
		log.Error().Err(err).Msg("failed to list alerts")
		c.JSON(http.StatusInternalServerError, model.NewError(model.ErrorCodeInternal, "internal server error"))
		return
	}

	c.JSON(http.StatusOK, alerts)
}
