package main

import (
	"os"
	"os/signal"
	"syscall"

	"petcare-booking/internal/adapters/http/middleware"
	"petcare-booking/internal/adapters/http/routes"
	"petcare-booking/internal/adapters/persistence/models"
	"petcare-booking/internal/config"
	"petcare-booking/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"

	_ "petcare-booking/docs" // Swagger docs
)

// @title PetCare Booking API
// @version 1.0
// @description Pet-sitting bookings: accounts, caretaker profiles and service scheduling.

// @contact.name API Support
// @contact.email support@petcare.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{Level: "info"})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDev()})
	log := logger.Get()

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables and the booking slot index if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}
	log.Info().Msg("database migration completed")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PetCare Booking API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	reminders := routes.Setup(app, db, cfg)

	if cfg.Reminder.Enabled {
		if err := reminders.Start(); err != nil {
			log.Fatal().Err(err).Str("spec", cfg.Reminder.Spec).Msg("failed to schedule reminders")
		}
		defer reminders.Stop()
	}

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log := logger.Get()
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}
