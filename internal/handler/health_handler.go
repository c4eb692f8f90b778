package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	completer port.Completer
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(completer port.Completer) *HealthHandler {
	return &HealthHandler{completer: completer}
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} HealthResponse "Service is alive"
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /readyz
// @Summary Readiness probe
// @Description Reports not ready when no completion provider is configured
// @Produce json
// @Success 200 {object} HealthResponse "Service is ready"
// @Failure 503 {object} HealthResponse "Service is not ready"
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.completer == nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Error:  "no completion provider configured",
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
