package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careercopilot/backend/keypool"
	"github.com/careercopilot/backend/models"
)

// SystemHandler serves health and operational endpoints
type SystemHandler struct {
	pool    *keypool.Pool
	version string
}

// NewSystemHandler creates a new system handler. A nil pool means the server
// runs in demo mode.
func NewSystemHandler(pool *keypool.Pool, version string) *SystemHandler {
	return &SystemHandler{pool: pool, version: version}
}

// Health returns server health status
// @Summary Health check
// @Description Returns server status and whether LLM keys are configured
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server healthy"
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	demoMode := h.pool == nil || h.pool.TotalCount() == 0
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DemoMode:  demoMode,
	})
}

// PoolStats returns API key pool availability
// @Summary Key pool statistics
// @Description Availability counters for the LLM API key pool
// @Tags System
// @Produce json
// @Success 200 {object} models.PoolStatsResponse "Pool statistics"
// @Router /pool/stats [get]
func (h *SystemHandler) PoolStats(c *gin.Context) {
	if h.pool == nil {
		c.JSON(http.StatusOK, models.PoolStatsResponse{})
		return
	}

	stats := h.pool.Stats()
	c.JSON(http.StatusOK, models.PoolStatsResponse{
		TotalKeys:     stats.TotalKeys,
		AvailableKeys: stats.AvailableKeys,
		RateLimited:   stats.RateLimited,
		TotalCalls:    stats.TotalCalls,
	})
}
