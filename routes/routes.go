package routes

import (
	"net/http"
	"time"

	"dojovcp/handlers"
	"dojovcp/middleware"
	"dojovcp/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with CORS, recovery and all route groups.
func SetupRouter(hb *handlers.HandlerBundle) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(utils.ErrorHandler())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	return r
}

// RegisterCatalogRoutes registers the public catalog endpoints and the
// protected admin endpoints that manage it.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/resources", hb.ListResourcesHandler)
		api.GET("/resources/:id/availability", hb.AvailabilityHandler)
		api.GET("/events", hb.ListEventsHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware())
		admin.POST("/resources", hb.CreateResourceHandler)
		admin.PUT("/resources/:id", hb.UpdateResourceHandler)
		admin.POST("/events", hb.CreateEventHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/quote", hb.QuoteHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.ReserveHandler)
		protected.POST("/events/:id", hb.ReserveEventHandler)
		protected.GET("/mine", hb.MyReservationsHandler)
		protected.GET("/id/:id", hb.GetReservationHandler)
		protected.GET("/id/:id/qr", hb.ConfirmationQRHandler)
		protected.POST("/id/:id/pay", hb.ConfirmPaidHandler)
		protected.POST("/id/:id/cancel", hb.CancelHandler)
		protected.POST("/checkin/:code", hb.CheckInHandler)
	}
}
