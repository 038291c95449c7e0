package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"probook/handlers"
	"probook/middleware"
)

// Handlers bundles everything the route registration needs.
type Handlers struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Payment      *handlers.PaymentHandler
	Customer     *handlers.CustomerHandler
	Job          *handlers.JobHandler
	Dashboard    *handlers.DashboardHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.Health)

	RegisterAvailabilityRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterProfessionalRoutes(r, h)
}

// RegisterAvailabilityRoutes registers the availability resolver endpoints.
// Reads are public (the customer-facing booking UI calls them before auth);
// writes require the owning professional.
func RegisterAvailabilityRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/availability")
	{
		api.GET("/:professionalId", h.Availability.GetDay)
		api.GET("/:professionalId/week", h.Availability.GetWeek)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(middleware.RoleProfessional))
		protected.PUT("/:professionalId", h.Availability.SetDay)
	}
}
