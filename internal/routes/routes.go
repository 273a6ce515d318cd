package routes

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resicare/resicare-api/internal/handlers"
	"github.com/resicare/resicare-api/internal/middleware"
	"github.com/resicare/resicare-api/internal/services"
	"github.com/resicare/resicare-api/internal/simulator"
	"github.com/resicare/resicare-api/internal/subscription"
)

// Deps are the services the route tree wires into handlers.
type Deps struct {
	JWTService          *services.JWTService
	AuthService         *services.AuthService
	NotificationService *services.NotificationService
	SubscriptionService *subscription.Service
	CalculationStore    *simulator.CalculationStore
}

func SetupRoutes(app *fiber.App, deps Deps) {
	// Initialize services
	formService := services.NewFormService()
	exportService := services.NewExportService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.JWTService)
	planHandler := handlers.NewPlanHandler()
	simulatorHandler := handlers.NewSimulatorHandler(deps.CalculationStore)
	subscriptionHandler := handlers.NewSubscriptionHandler(deps.SubscriptionService, exportService)
	formHandler := handlers.NewFormHandler(formService)
	notificationHandler := handlers.NewNotificationHandler(deps.NotificationService)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "ResiCare API is running",
		})
	})

	// API group; every route is session-scoped
	api := app.Group("/api", middleware.SessionMiddleware())

	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "ResiCare API is running",
		})
	})

	// ==================
	// Plan catalog (public, read-only)
	// ==================
	api.Get("/plans", planHandler.List)
	api.Get("/plans/:id", planHandler.Get)

	// ==================
	// Premium simulator
	// ==================
	api.Post("/simulator/validate", simulatorHandler.Validate)
	api.Post("/simulator/calculate", simulatorHandler.Calculate)
	api.Get("/simulator/last", simulatorHandler.Last)
	api.Delete("/simulator", simulatorHandler.Reset)

	// ==================
	// Demo auth
	// ==================
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.AuthMiddleware(deps.JWTService))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// ==================
	// Subscriptions and demo forms
	// Rate limited: simulated processing is slow by design
	// ==================
	limited := api.Group("", middleware.RateLimitMiddleware())
	limited.Post("/subscriptions", subscriptionHandler.Create)
	limited.Post("/forms/:type", formHandler.Process)

	api.Get("/subscriptions", subscriptionHandler.List)
	api.Get("/subscriptions/export", subscriptionHandler.Export)

	// ==================
	// Notifications
	// ==================
	api.Get("/notifications", notificationHandler.List)
	api.Get("/notifications/unread-count", notificationHandler.UnreadCount)
	api.Post("/notifications/:id/read", notificationHandler.MarkAsRead)
}
