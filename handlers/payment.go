package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"probook/services/payment"
	"probook/utils"
)

// PaymentHandler serves the payment completion flow.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// Pay handles POST /api/bookings/:id/pay. The total (service amount plus
// platform fee) is computed server-side at charge time.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var input struct {
		MethodToken string `json:"methodToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, invoice, err := h.Service.Charge(c.Request.Context(), c.Param("id"), input.MethodToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": b,
		"invoice": invoice,
	})
}
