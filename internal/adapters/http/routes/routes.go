package routes

import (
	"evercare-dental/internal/adapters/http/handlers"
	"evercare-dental/internal/adapters/http/middleware"
	"evercare-dental/internal/adapters/persistence/repositories"
	"evercare-dental/internal/config"
	"evercare-dental/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	apptRepo := repositories.NewAppointmentRepository(db)

	// Initialize services
	scheduleService := services.NewScheduleService(cfg.Schedule)
	notifyService := services.NewNotificationService(cfg.WhatsApp)
	apptService := services.NewAppointmentService(apptRepo, scheduleService, notifyService)
	patientService := services.NewPatientService(patientRepo)
	authService := services.NewAuthService(userRepo, cfg)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(authService)
	apptHandler := handlers.NewAppointmentHandler(apptService)
	patientHandler := handlers.NewPatientHandler(patientService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	api.Get("/", healthHandler.APIInfo)

	setupAppointmentRoutes(api.Group("/appointments"), apptHandler, cfg)
	setupAuthRoutes(api.Group("/auth"), authHandler, cfg)
	setupUserRoutes(api.Group("/users"), userHandler, cfg)
	setupPatientRoutes(api.Group("/patients"), patientHandler, cfg)

	// Dashboard (admin only)
	dashboardRoutes := api.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.AdminOnly())
	dashboardRoutes.Get("/", dashboardHandler.Get)
}

// setupAppointmentRoutes configures booking routes. Booking and
// availability are public so the booking page works without an
// account; edits and history are admin only.
func setupAppointmentRoutes(router fiber.Router, handler *handlers.AppointmentHandler, cfg *config.Config) {
	router.Post("/", middleware.BookingRateLimiter(), handler.Create)
	router.Get("/", handler.List)
	router.Get("/availability", handler.GetAvailability)

	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminOnly())
	admin.Get("/by-mobile/:mobile", handler.ByMobile)
	admin.Put("/:id", handler.Update)
	admin.Delete("/:id", handler.Delete)
}

// setupAuthRoutes configures authentication routes. Login and register
// take the stricter auth rate limit.
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	router.Post("/admin-login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)

	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupUserRoutes configures account management routes (admin only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler, cfg *config.Config) {
	router.Use(middleware.AuthMiddleware(cfg))
	router.Use(middleware.AdminOnly())

	router.Get("/", handler.List)
	router.Put("/:id/role", handler.SetRole)
}

// setupPatientRoutes configures the patient directory (admin only)
func setupPatientRoutes(router fiber.Router, handler *handlers.PatientHandler, cfg *config.Config) {
	router.Use(middleware.AuthMiddleware(cfg))
	router.Use(middleware.AdminOnly())

	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Get("/by-mobile/:mobile", handler.GetByMobile)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}
