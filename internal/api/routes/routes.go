package routes

import (
	"fmt"
	"net/http"
	"time"

	"club-shifts-backend/internal/api/handlers"
	"club-shifts-backend/internal/api/middleware"
	"club-shifts-backend/internal/auth"
	"club-shifts-backend/internal/config"
	"club-shifts-backend/internal/repository"
	"club-shifts-backend/internal/schedule"
	"club-shifts-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. A nil clock reads the wall
// clock in the configured club timezone. With AUTH_ENABLED set, a signer that cannot be
// built is an error rather than an unauthenticated API.
func SetupRoutes(db *gorm.DB, cfg *config.Config, clock schedule.Clock) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	defaultLoc := cfg.Location()
	if clock == nil {
		clock = schedule.NewSystemClock(defaultLoc)
	}
	validator := service.NewValidator()

	// Initialize repositories
	clubRepo := repository.NewClubRepository(db)
	windowRepo := repository.NewShiftWindowRepository(db)
	configRepo := repository.NewShiftConfigurationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Initialize services
	clubService := service.NewClubService(clubRepo, validator, defaultLoc)
	windowService := service.NewShiftWindowService(windowRepo, configRepo, clubRepo, validator)
	resolverService := service.NewShiftResolverService(windowRepo, clubRepo, clock, defaultLoc)
	configService := service.NewShiftConfigurationService(configRepo, windowRepo, clubRepo, validator)
	bookingService := service.NewBookingService(bookingRepo, clubRepo, validator, defaultLoc)

	// Initialize auth
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if cfg.AuthEnabled {
		authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret, cfg.JWTTTL()))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize auth service: %w", err)
		}
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	} else {
		logrus.Warn("AUTH_ENABLED is off, API is unauthenticated")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, clock)
	clubHandler := handlers.NewClubHandler(clubService)
	windowHandler := handlers.NewShiftWindowHandler(windowService)
	resolutionHandler := handlers.NewShiftResolutionHandler(resolverService)
	configHandler := handlers.NewShiftConfigurationHandler(configService)
	bookingHandler := handlers.NewBookingHandler(bookingService, clock)

	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			if !cfg.IsProduction() {
				authGroup.POST("/token", authHandler.Token)
			}
			authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
		}
	}

	var requireAdmin, requireClubAccess gin.HandlerFunc = passthrough, passthrough
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
		requireAdmin = authMiddleware.RequireAdmin()
		requireClubAccess = authMiddleware.RequireClubAccess()
	}

	{
		v1.POST("/bookings/status", bookingHandler.DeriveStatus)

		v1.GET("/clubs", requireAdmin, clubHandler.ListClubs)
		v1.POST("/clubs", requireAdmin, clubHandler.CreateClub)

		club := v1.Group("/clubs/:" + auth.ClubIDParam)
		club.Use(requireClubAccess)
		{
			club.GET("", clubHandler.GetClub)
			club.GET("/active-shift", resolutionHandler.GetActiveShiftWindow)

			windows := club.Group("/shift-windows")
			{
				windows.GET("", windowHandler.ListShiftWindows)
				windows.POST("", requireAdmin, windowHandler.CreateShiftWindow)
				windows.GET("/:windowId", windowHandler.GetShiftWindow)
				windows.PATCH("/:windowId", requireAdmin, windowHandler.UpdateShiftWindow)
				windows.DELETE("/:windowId", requireAdmin, windowHandler.DeleteShiftWindow)
			}

			shiftConfig := club.Group("/shift-configuration")
			{
				shiftConfig.GET("", configHandler.GetShiftConfiguration)
				shiftConfig.PUT("/current", requireAdmin, configHandler.SetCurrentShiftWindow)
				shiftConfig.PUT("/rotation", requireAdmin, configHandler.UpdateRotation)
				shiftConfig.POST("/rotate", requireAdmin, configHandler.RotateShiftWindow)
			}

			bookings := club.Group("/bookings")
			{
				bookings.GET("", bookingHandler.ListBookings)
				bookings.POST("", bookingHandler.CreateBooking)
				bookings.GET("/:bookingId", bookingHandler.GetBooking)
				bookings.DELETE("/:bookingId", bookingHandler.DeleteBooking)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, clock schedule.Clock) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	if clock == nil {
		clock = schedule.NewSystemClock(time.UTC)
	}
	registerHealthRoutes(router, handlers.NewHealthHandler(db, clock))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}

func passthrough(c *gin.Context) {
	c.Next()
}
