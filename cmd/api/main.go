package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eventhub/eventhub-backend/internal/config"
	"github.com/eventhub/eventhub-backend/internal/handler"
	"github.com/eventhub/eventhub-backend/internal/repository/postgres"
	"github.com/eventhub/eventhub-backend/internal/service"
	"github.com/eventhub/eventhub-backend/pkg/database"
	"github.com/eventhub/eventhub-backend/pkg/email"
	"github.com/eventhub/eventhub-backend/pkg/logger"
	"github.com/eventhub/eventhub-backend/pkg/storage"
	"github.com/eventhub/eventhub-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	// Image storage
	var imageStorage storage.StorageService
	switch cfg.StorageDriver {
	case "r2":
		imageStorage, err = storage.NewR2Storage(cfg.R2)
		if err != nil {
			zapLogger.Fatal("failed to initialize R2 storage", zap.Error(err))
		}
	default:
		imageStorage, err = storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			zapLogger.Fatal("failed to initialize local storage", zap.Error(err))
		}
	}

	emailService := email.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		zapLogger,
	)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo, zapLogger)
	eventService := service.NewEventService(eventRepo, imageStorage, zapLogger)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	eventHandler := handler.NewEventHandler(eventService)
	userHandler := handler.NewUserHandler(userService, validator)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())

	if cfg.StorageDriver == "local" {
		app.Static("/uploads", cfg.UploadDir)
	}

	handler.RegisterRoutes(app, authHandler, eventHandler, userHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zapLogger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zapLogger.Error("shutdown failed", zap.Error(err))
	}
}
