package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"probook/models"
	"probook/services/dashboard"
)

// DashboardHandler serves the professional's unified jobs+bookings timeline.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

// Timeline handles GET /api/dashboard. The filter/sort/group configuration is
// entirely request-supplied; there is no server-side view state.
func (h *DashboardHandler) Timeline(c *gin.Context) {
	query := models.TimelineQuery{
		Status:      models.UnifiedStatus(c.Query("status")),
		ItemType:    models.ItemType(c.Query("itemType")),
		GroupByDate: c.Query("groupByDate") == "true",
	}

	timeline, err := h.Service.BuildTimeline(c.Request.Context(), c.GetString("userID"), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}
