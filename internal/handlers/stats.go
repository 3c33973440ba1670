package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
)

// StatsHandler serves whole-history summary statistics
type StatsHandler struct {
	insightsService service.InsightsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(insightsService service.InsightsService) *StatsHandler {
	return &StatsHandler{insightsService: insightsService}
}

// GetMoodStats returns the mood distribution
// GET /api/v1/stats/moods?from=2025-01-01&to=2025-03-31
func (h *StatsHandler) GetMoodStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	q, ok := bindQuery(c, true)
	if !ok {
		return
	}

	dist, err := h.insightsService.GetMoodStats(c.Request.Context(), userID, q)
	if err != nil {
		writeServiceError(c, err, "get_mood_stats")
		return
	}

	c.JSON(http.StatusOK, dist)
}

// GetTaskStats returns task totals, completion rate and categories
// GET /api/v1/stats/tasks
func (h *StatsHandler) GetTaskStats(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	q, ok := bindQuery(c, true)
	if !ok {
		return
	}

	stats, err := h.insightsService.GetTaskStats(c.Request.Context(), userID, q)
	if err != nil {
		writeServiceError(c, err, "get_task_stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
