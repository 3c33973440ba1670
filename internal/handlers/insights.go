package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
)

// InsightsHandler handles insights-related HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetReport returns the full report for the authenticated user
// GET /api/v1/insights?window=30&tz=Europe/Berlin
func (h *InsightsHandler) GetReport(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	q, ok := bindQuery(c, false)
	if !ok {
		return
	}

	report, err := h.insightsService.GetReport(c.Request.Context(), userID, q)
	if err != nil {
		writeServiceError(c, err, "get_report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTrend returns one point per day of the window, null for days without entries
// GET /api/v1/insights/trend
func (h *InsightsHandler) GetTrend(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	q, ok := bindQuery(c, false)
	if !ok {
		return
	}

	trend, err := h.insightsService.GetTrend(c.Request.Context(), userID, q)
	if err != nil {
		writeServiceError(c, err, "get_trend")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// GetCorrelations returns the correlation table and the narrative insight
// GET /api/v1/insights/correlations
func (h *InsightsHandler) GetCorrelations(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	q, ok := bindQuery(c, false)
	if !ok {
		return
	}

	result, err := h.insightsService.GetCorrelations(c.Request.Context(), userID, q)
	if err != nil {
		writeServiceError(c, err, "get_correlations")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetToday returns the dashboard snapshot
// GET /api/v1/dashboard/today
func (h *InsightsHandler) GetToday(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	q, ok := bindQuery(c, false)
	if !ok {
		return
	}

	today, err := h.insightsService.GetToday(c.Request.Context(), userID, q)
	if err != nil {
		writeServiceError(c, err, "get_today")
		return
	}

	c.JSON(http.StatusOK, today)
}
