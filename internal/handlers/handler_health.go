package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/dto"
)

type healthHandler struct {
	health portssvc.HealthSvc
	now    func() time.Time
}

func registerHealthRoutes(rg *gin.RouterGroup, health portssvc.HealthSvc, now func() time.Time) {
	h := &healthHandler{health: health, now: now}
	rg.GET("/health", h.ping)
	rg.GET("/health/dependencies", h.dependencies)
}

// ping godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *healthHandler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Time: h.now().UTC().Format(time.RFC3339)})
}

// dependencies godoc
// @Summary Dependency check
// @Description Probes the event store and both earnings providers. Always answers 200.
// @Tags health
// @Produce json
// @Success 200 {object} services.DependencyStatus
// @Router /health/dependencies [get]
func (h *healthHandler) dependencies(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.CheckDependencies(c.Request.Context()))
}
