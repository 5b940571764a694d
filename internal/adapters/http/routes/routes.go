package routes

import (
	"petcare-booking/internal/adapters/http/handlers"
	"petcare-booking/internal/adapters/http/middleware"
	"petcare-booking/internal/adapters/persistence/repositories"
	"petcare-booking/internal/config"
	"petcare-booking/internal/core/services"
	"petcare-booking/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Handlers groups every HTTP handler mounted by Mount
type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	User    *handlers.UserHandler
	Booking *handlers.BookingHandler
}

// Setup wires repositories, services and handlers and mounts all routes.
// The returned reminder service is not started.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.ReminderService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	codec := jwt.NewCodec(cfg.JWT.Secret, cfg.JWT.TTL)

	// Initialize services
	authService := services.NewAuthService(userRepo, codec)
	userService := services.NewUserService(userRepo)
	bookingService := services.NewBookingService(bookingRepo, userRepo)
	notifyService := services.NewNotificationService(cfg.Reminder.WebhookURL)
	reminderService := services.NewReminderService(bookingRepo, notifyService, cfg.Reminder.Spec)

	// Initialize handlers
	h := &Handlers{
		Health:  handlers.NewHealthHandler(cfg.AppMode, func() error { return config.HealthCheck(db) }),
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(userService),
		Booking: handlers.NewBookingHandler(bookingService),
	}

	Mount(app, h, codec)
	return reminderService
}

// Mount registers every route on app
func Mount(app *fiber.App, h *Handlers, codec *jwt.Codec) {
	auth := middleware.AuthMiddleware(codec)

	// Health check & root routes
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	setupAuthRoutes(app, h.Auth, h.User, auth)
	setupUserRoutes(app, h.User, auth)
	setupAdminRoutes(app, h.User, auth)
	setupBookingRoutes(app, h.Booking)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, userHandler *handlers.UserHandler, auth fiber.Handler) {
	// Public routes
	router.Post("/register", handler.Register)
	router.Post("/login", middleware.NoCacheHeaders(), handler.Login)

	// Protected routes
	router.Get("/me", auth, middleware.NoCacheHeaders(), userHandler.Me)
}

// setupUserRoutes configures client profile routes and the admin-only listing
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler, auth fiber.Handler) {
	router.Get("/users", auth, middleware.AdminOnly(), handler.ListUsers)

	userRoutes := router.Group("/user", auth)
	userRoutes.Put("/update", handler.UpdateProfile)
	userRoutes.Put("/change-password", handler.ChangePassword)
}

// setupAdminRoutes configures caretaker profile routes (Admin only)
func setupAdminRoutes(router fiber.Router, handler *handlers.UserHandler, auth fiber.Handler) {
	adminRoutes := router.Group("/admin", auth, middleware.AdminOnly())
	adminRoutes.Get("/me", middleware.NoCacheHeaders(), handler.AdminMe)
	adminRoutes.Put("/update", handler.UpdateProfile)
	adminRoutes.Put("/change-password", handler.ChangePassword)
}

// setupBookingRoutes configures booking routes (public)
func setupBookingRoutes(router fiber.Router, handler *handlers.BookingHandler) {
	bookingRoutes := router.Group("/services")
	bookingRoutes.Post("/", handler.Create)
	bookingRoutes.Get("/", handler.List)
	bookingRoutes.Get("/user/:userId", handler.ListByClient)
	bookingRoutes.Get("/admin/:adminId", handler.ListByCaretaker)
	bookingRoutes.Patch("/:id/concluir", handler.Conclude)
}
