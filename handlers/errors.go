package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"probook/services/booking"
	"probook/services/payment"
	"probook/utils"
)

// respondError maps the service error taxonomy onto HTTP. Every typed error
// is recoverable by the caller; anything unrecognized is a generic failure
// that gets logged, never retried automatically.
func respondError(c *gin.Context, err error) {
	var (
		validationErr   *booking.ValidationError
		notFoundErr     *booking.NotFoundError
		transitionErr   *booking.InvalidTransitionError
		notQuotedErr    *booking.NotInQuotedStateError
		slotConflictErr *booking.SlotConflictError
		quoteExpiredErr *booking.QuoteExpiredError
		unavailableErr  *booking.UnavailableError
		alreadyPaidErr  *payment.AlreadyPaidError
		notPayableErr   *payment.NotPayableError
		chargeFailedErr *payment.ChargeFailedError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", validationErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", notFoundErr.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", transitionErr.Error())
	case errors.As(err, &notQuotedErr):
		utils.JSONError(c, http.StatusConflict, "Quote already resolved or not yet sent", notQuotedErr.Error())
	case errors.As(err, &slotConflictErr):
		// The UI should re-fetch availability on this one.
		utils.JSONError(c, http.StatusConflict, "Slot no longer available", slotConflictErr.Error())
	case errors.As(err, &quoteExpiredErr):
		utils.JSONError(c, http.StatusGone, "Quote expired", quoteExpiredErr.Error())
	case errors.As(err, &alreadyPaidErr):
		utils.JSONError(c, http.StatusConflict, "Booking already paid", alreadyPaidErr.Error())
	case errors.As(err, &notPayableErr):
		utils.JSONError(c, http.StatusConflict, "Booking not payable", notPayableErr.Error())
	case errors.As(err, &chargeFailedErr):
		utils.JSONError(c, http.StatusPaymentRequired, "Charge failed", chargeFailedErr.Error())
	case errors.As(err, &unavailableErr):
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", unavailableErr.Error())
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
		})
	}
}
