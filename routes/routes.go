package routes

import (
	"net/http"
	"time"

	"salonbook/handlers"
	"salonbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the service and package catalog endpoints.
// Reads are public; every write requires an admin token.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.GET("", hb.Catalog.ListServicesHandler)
		services.GET("/:id", hb.Catalog.GetServiceHandler)

		services.Use(middleware.JWTAuthAdminMiddleware())
		services.POST("", hb.Catalog.CreateServiceHandler)
		services.PUT("/:id", hb.Catalog.UpdateServiceHandler)
		services.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
		services.POST("/upload/:id", hb.Upload.UploadServiceImageHandler)
	}

	packages := r.Group("/api/packages")
	{
		packages.GET("", hb.Catalog.ListPackagesHandler)
		packages.GET("/:id", hb.Catalog.GetPackageHandler)

		packages.Use(middleware.JWTAuthAdminMiddleware())
		packages.POST("", hb.Catalog.CreatePackageHandler)
		packages.PUT("/:id", hb.Catalog.UpdatePackageHandler)
		packages.DELETE("/:id", hb.Catalog.DeletePackageHandler)
		packages.POST("/upload/:id", hb.Upload.UploadPackageImageHandler)
	}
}

// RegisterCartRoutes registers the cart session endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.POST("", hb.Cart.CreateCartHandler)
		api.GET("/:cartId", hb.Cart.GetCartHandler)
		api.POST("/:cartId/items", hb.Cart.AddItemHandler)
		api.DELETE("/:cartId/items/:itemId", hb.Cart.RemoveItemHandler)
	}
}

// RegisterBookingRoutes registers checkout submission (public) and the
// admin-gated booking views.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id", hb.Booking.UpdateBookingStatusHandler)
	}
}

// RegisterPaymentRoutes registers the payment gateway boundary.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/create-order", hb.Payment.CreateOrderHandler)
	r.POST("/api/verify-payment", hb.Payment.VerifyPaymentHandler)
}

// RegisterAdminRoutes registers admin authentication.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.Admin.LoginHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server works fine!"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
