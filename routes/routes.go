package routes

import (
	"net/http"
	"time"

	"github.com/Present111/Hotel-Booking/handlers"
	"github.com/Present111/Hotel-Booking/middleware"
	"github.com/Present111/Hotel-Booking/models"
	"github.com/Present111/Hotel-Booking/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHotelBookingRoutes registers the guest booking flow under a hotel.
func RegisterHotelBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	hotels := api.Group("/hotels/:hotelId/bookings")
	{
		hotels.Use(middleware.JWTAuthMiddleware())
		hotels.POST("/payment-intent", hb.BookingHandler.CreatePaymentIntent)
		hotels.POST("", hb.BookingHandler.CreateBooking)
	}
}

// RegisterBookingRoutes registers booking management endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware())
		bookings.GET("", middleware.RequireRoles(models.RoleAdmin), hb.BookingHandler.ListBookings)
		bookings.GET("/hotel/:hotelId", middleware.RequireRoles(models.RoleHotelOwner), hb.BookingHandler.ListHotelBookings)
		bookings.GET("/:id", hb.BookingHandler.GetBooking)
		bookings.PATCH("/:id/status", hb.BookingHandler.UpdateStatus)
		bookings.PATCH("/:id/payment", hb.BookingHandler.UpdatePayment)
		bookings.DELETE("/:id", hb.BookingHandler.DeleteBooking)
	}

	api.GET("/my-bookings", middleware.JWTAuthMiddleware(), hb.BookingHandler.ListMyBookings)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	adminGroup := api.Group("/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireRoles(models.RoleAdmin))
		adminGroup.POST("/bookings", hb.AdminHandler.CreateManualBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := hb.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())

	RegisterHealthRoute(r)

	api := r.Group("/api", middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))
	RegisterHotelBookingRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
}
