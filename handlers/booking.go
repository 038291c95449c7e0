package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"probook/models"
	"probook/services/booking"
	"probook/utils"
)

// BookingHandler serves booking creation, queries and lifecycle transitions.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// List handles GET /api/bookings with optional filters.
func (h *BookingHandler) List(c *gin.Context) {
	filter := models.BookingFilter{
		ProfessionalID: c.Query("professionalId"),
		Date:           c.Query("date"),
		Status:         models.BookingStatus(c.Query("status")),
		CustomerEmail:  c.Query("customerEmail"),
	}
	bookings, err := h.Service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// SubmitQuote handles POST /api/bookings/:id/quote.
func (h *BookingHandler) SubmitQuote(c *gin.Context) {
	var input struct {
		Price      float64    `json:"price" binding:"required"`
		Message    string     `json:"message" binding:"required"`
		ValidUntil *time.Time `json:"validUntil"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := h.Service.SubmitQuote(c.Request.Context(), c.Param("id"), input.Price, input.Message, input.ValidUntil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// RespondToQuote handles POST /api/bookings/:id/quote/response.
func (h *BookingHandler) RespondToQuote(c *gin.Context) {
	var input struct {
		Response string `json:"response" binding:"required,oneof=accept decline"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := h.Service.RespondToQuote(c.Request.Context(), c.Param("id"), input.Response == "accept")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeclineRequest handles POST /api/bookings/:id/decline.
func (h *BookingHandler) DeclineRequest(c *gin.Context) {
	h.transition(c, h.Service.DeclineRequest)
}

// Confirm handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.Service.Confirm)
}

// Complete handles POST /api/bookings/:id/complete.
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.Service.Complete)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.Service.Cancel)
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, id string) (*models.Booking, error)) {
	b, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
