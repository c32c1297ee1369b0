package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"evercare-dental/internal/adapters/http/middleware"
	"evercare-dental/internal/adapters/http/routes"
	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/adapters/persistence/repositories"
	"evercare-dental/internal/config"
	"evercare-dental/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "evercare-dental/docs" // Swagger docs
)

// @title EverCare Dental API
// @version 1.0
// @description Dental clinic appointment booking and patient management API

// @contact.name API Support
// @contact.email support@ever-care.com

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the admin account from env (no-op when already present)
	if err := config.SeedData(db, cfg); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Daily WhatsApp reminders for today's confirmed appointments
	reminderService := services.NewReminderService(
		repositories.NewAppointmentRepository(db),
		services.NewNotificationService(cfg.WhatsApp),
		cfg.WhatsApp.ReminderCron,
	)
	if err := reminderService.Start(); err != nil {
		log.Fatalf("❌ Failed to start reminder job: %v", err)
	}
	defer reminderService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EverCare Dental API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
