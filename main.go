package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/database"
	adminRepoPkg "salonbook/database/repository/admin"
	bookingRepoPkg "salonbook/database/repository/booking"
	packRepoPkg "salonbook/database/repository/pack"
	svcRepoPkg "salonbook/database/repository/service"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	adminSvc "salonbook/services/admin"
	bookingSvc "salonbook/services/booking"
	"salonbook/services/cart"
	"salonbook/services/catalog"
	"salonbook/services/checkout"
	"salonbook/services/payment"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitCartCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	serviceRepo := svcRepoPkg.NewMongoServiceRepo()
	packageRepo := packRepoPkg.NewMongoPackageRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		ServiceRepo: serviceRepo,
		PackageRepo: packageRepo,
		Cache:       catalog.NewRedisListCache(utils.GetCacheClient()),
	}

	cartService := &cart.RedisCartService{
		Client:  utils.GetCartClient(),
		Catalog: catalogService,
		TTL:     time.Duration(config.AppConfig.CartTTLMin) * time.Minute,
	}

	gateway := payment.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
	)

	checkoutService := &checkout.DefaultCheckoutService{
		Carts:    cartService,
		Bookings: bookingRepo,
		Gateway:  gateway,
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo: bookingRepo,
	}

	authService := &adminSvc.DefaultAuthService{
		Repo: adminRepo,
	}
	if err := authService.EnsureSeedAdmin(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed admin account: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog: handlers.NewCatalogHandler(catalogService),
		Cart:    handlers.NewCartHandler(cartService),
		Booking: handlers.NewBookingHandler(checkoutService, bookingService),
		Payment: handlers.NewPaymentHandler(gateway),
		Admin:   handlers.NewAdminHandler(authService),
		Upload:  handlers.NewUploadHandler(cloudinaryStorageService, catalogService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
