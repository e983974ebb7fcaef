package routes

import (
	"net/http"
	"time"

	"pawbook/handlers"
	"pawbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("/wizard", h.StartWizard)
		api.GET("/wizard/:sessionID", h.GetWizard)
		api.PUT("/wizard/:sessionID/pet", h.SetPet)
		api.PUT("/wizard/:sessionID/employee", h.SetEmployee)
		api.PUT("/wizard/:sessionID/date", h.SetDate)
		api.PUT("/wizard/:sessionID/time-slot", h.SetTimeSlot)
		api.PUT("/wizard/:sessionID/notes", h.SetNotes)
		api.PUT("/wizard/:sessionID/payment-method", h.SetPaymentMethod)
		api.GET("/wizard/:sessionID/can-advance", h.CanAdvance)
		api.POST("/wizard/:sessionID/advance", h.Advance)
		api.POST("/wizard/:sessionID/retreat", h.Retreat)
		api.GET("/wizard/:sessionID/availability", h.FetchAvailability)
		api.POST("/wizard/:sessionID/submit", h.Submit)
		api.DELETE("/wizard/:sessionID", h.CancelWizard)
	}
}

// RegisterCatalogRoutes registers the service catalogue and pet lookups.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	api := r.Group("/api")
	{
		api.GET("/services", h.ListServices)
		api.GET("/services/:serviceID", h.GetService)
		api.GET("/pets", h.ListPets)
	}
}

// RegisterCalendarRoutes registers the staff calendar behind the staff guard.
func RegisterCalendarRoutes(r *gin.Engine, h *handlers.CalendarHandler) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.StaffAuthMiddleware())
		api.GET("/layout", h.GetLayout)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pawbook"})
	})
}

// CORSConfig builds the shared CORS policy.
func CORSConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
