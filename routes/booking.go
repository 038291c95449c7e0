package routes

import (
	"github.com/gin-gonic/gin"

	"probook/middleware"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle
// engine. Every endpoint requires an authenticated caller; the professional
// and customer sides are split by role.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("", middleware.RequireRole(middleware.RoleCustomer), h.Booking.Create)
		api.GET("", h.Booking.List)
		api.GET("/:id", h.Booking.Get)

		// Professional-side transitions.
		pro := api.Group("")
		pro.Use(middleware.RequireRole(middleware.RoleProfessional))
		pro.POST("/:id/quote", h.Booking.SubmitQuote)
		pro.POST("/:id/decline", h.Booking.DeclineRequest)
		pro.POST("/:id/confirm", h.Booking.Confirm)
		pro.POST("/:id/complete", h.Booking.Complete)

		// Customer-side operations.
		cust := api.Group("")
		cust.Use(middleware.RequireRole(middleware.RoleCustomer))
		cust.POST("/:id/quote/response", h.Booking.RespondToQuote)
		cust.POST("/:id/pay", h.Payment.Pay)

		// Either party may cancel a non-terminal booking.
		api.POST("/:id/cancel", h.Booking.Cancel)
	}
}

// RegisterProfessionalRoutes registers the professional dashboard surfaces:
// client roster, legacy jobs, and the unified timeline.
func RegisterProfessionalRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(middleware.RoleProfessional))
	{
		api.GET("/customers", h.Customer.List)
		api.POST("/customers", h.Customer.Create)
		api.PUT("/customers/:id", h.Customer.Update)
		api.DELETE("/customers/:id", h.Customer.Delete)

		api.GET("/jobs", h.Job.List)
		api.POST("/jobs", h.Job.Create)
		api.PUT("/jobs/:id", h.Job.Update)

		api.GET("/dashboard", h.Dashboard.Timeline)
	}
}
