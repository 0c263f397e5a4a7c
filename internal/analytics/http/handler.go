package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanw/portfolio-backend/internal/analytics/service"
)

// Handler serves the analytics snapshot endpoint.
type Handler struct {
	svc *service.AnalyticsService
}

func New(svc *service.AnalyticsService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.snapshot)
}

func (h *Handler) snapshot(c *gin.Context) {
	snap, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "analytics": snap})
}
