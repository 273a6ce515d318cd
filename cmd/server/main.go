package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/resicare/resicare-api/config"
	"github.com/resicare/resicare-api/internal/database"
	"github.com/resicare/resicare-api/internal/kvstore"
	"github.com/resicare/resicare-api/internal/middleware"
	"github.com/resicare/resicare-api/internal/rabbitmq"
	"github.com/resicare/resicare-api/internal/routes"
	"github.com/resicare/resicare-api/internal/services"
	"github.com/resicare/resicare-api/internal/simulator"
	"github.com/resicare/resicare-api/internal/subscription"
	workers "github.com/resicare/resicare-api/internal/worker"
	"github.com/uptrace/bun"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database. Storage failure is not fatal: the API keeps
	// running with in-memory state for the session.
	var db *bun.DB
	var store kvstore.Store
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg)
		if err != nil {
			log.Printf("Database unavailable, no persistence this session: %v", err)
		}
	}
	if db != nil {
		defer database.Close()
		store = kvstore.NewDBStore(db)
		log.Printf("Connected to database successfully")
	} else {
		store = kvstore.NewMemoryStore()
		log.Printf("Using in-memory storage")
	}

	// Initialize services
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.SessionExpiry)
	cryptoService := services.NewCryptoService(cfg.AppSecret)
	authService := services.NewAuthService(jwtService, store)
	emailService := services.NewEmailService()
	notificationService := services.NewNotificationService(store, emailService)
	subscriptionService := subscription.NewService(store, db, cryptoService)
	calculationStore := simulator.NewCalculationStore(store)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:       "ResiCare API",
		CaseSensitive: true,
		StrictRouting: false,
		ServerHeader:  "ResiCare",
		ErrorHandler:  customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			log.Printf("PANIC RECOVERED: %v", e)
			log.Printf("Request: %s %s", c.Method(), c.Path())
			log.Printf("Stack Trace:\n%s", string(debug.Stack()))
		},
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} (${latency})\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Setup RabbitMQ
	if cfg.RabbitMQURL != "" {
		if err := rabbitmq.SetupRabbitMQ(cfg.RabbitMQURL); err != nil {
			// Completion events degrade gracefully; the server still runs
			log.Printf("Failed to connect to RabbitMQ: %v", err)
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				subscriptionWorker := workers.NewSubscriptionWorker(notificationService)
				if err := subscriptionWorker.StartWorker(ctx); err != nil {
					log.Printf("Worker failed: %v", err)
				}
			}()

			defer rabbitmq.Close()
		}
	}

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		JWTService:          jwtService,
		AuthService:         authService,
		NotificationService: notificationService,
		SubscriptionService: subscriptionService,
		CalculationStore:    calculationStore,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Environment: %s", cfg.Env)
	log.Printf("Allowed origins: %v", cfg.AllowedOrigins)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   "Error",
		"message": err.Error(),
	})
}
