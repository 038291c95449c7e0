package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"probook/services/scheduling"
	"probook/utils"
)

// AvailabilityHandler serves resolved slot availability.
type AvailabilityHandler struct {
	Resolver scheduling.Resolver
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(resolver scheduling.Resolver) *AvailabilityHandler {
	return &AvailabilityHandler{Resolver: resolver}
}

// GetDay returns the bookable slots for one professional and date. The slot
// list is ordered; the UI renders it directly as buttons.
func (h *AvailabilityHandler) GetDay(c *gin.Context) {
	professionalID := c.Param("professionalId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing parameter", "date query parameter is required")
		return
	}

	slots := h.Resolver.AvailableSlots(c.Request.Context(), professionalID, date)
	c.JSON(http.StatusOK, gin.H{
		"professionalId": professionalID,
		"date":           date,
		"slots":          slots,
	})
}

// GetWeek returns seven days of resolved availability starting at ?start=.
func (h *AvailabilityHandler) GetWeek(c *gin.Context) {
	professionalID := c.Param("professionalId")
	start := c.Query("start")
	if start == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing parameter", "start query parameter is required")
		return
	}

	week, err := h.Resolver.GetWeek(c.Request.Context(), professionalID, start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start date", err.Error())
		return
	}
	c.JSON(http.StatusOK, week)
}

// SetDay replaces the professional's configured grid for one date. Owner only.
func (h *AvailabilityHandler) SetDay(c *gin.Context) {
	professionalID := c.Param("professionalId")
	if callerID, _ := c.Get("userID"); callerID != professionalID {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "availability can only be changed by its owner")
		return
	}

	var input struct {
		Date  string   `json:"date" binding:"required"`
		Slots []string `json:"slots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if err := h.Resolver.SetAvailability(c.Request.Context(), professionalID, input.Date, input.Slots); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to set availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionalId": professionalID, "date": input.Date, "slots": input.Slots})
}
