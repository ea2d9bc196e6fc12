package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/handlers"
	"github.com/msumanth960/Votingapp/internal/repositories"
	"github.com/msumanth960/Votingapp/internal/services"
	"github.com/msumanth960/Votingapp/pkg/database"
	"github.com/msumanth960/Votingapp/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables")
	}

	logger.Init()

	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := repositories.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	if err := os.MkdirAll(cfg.ReceiptDir, 0o755); err != nil {
		logrus.Fatalf("Failed to create receipt directory: %v", err)
	}
	if err := os.MkdirAll(cfg.PhotoDir, 0o755); err != nil {
		logrus.Fatalf("Failed to create photo directory: %v", err)
	}

	repo := repositories.NewRepository(db)

	locationSvc := services.NewLocationService(repo, cfg)
	electionSvc := services.NewElectionService(repo, cfg)
	candidateSvc := services.NewCandidateService(repo, cfg)
	voteSvc := services.NewVoteService(repo, cfg)
	resultsSvc := services.NewResultsService(repo, cfg)
	settingsSvc := services.NewSettingsService(repo, cfg)
	otpSvc := services.NewOTPService(repo, cfg)

	// Settings are served from memory; prime the snapshot before listening.
	if err := settingsSvc.Load(); err != nil {
		logrus.Fatalf("Failed to load site settings: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Votingapp",
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadSize) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	}))

	app.Static("/receipts", cfg.ReceiptDir)
	app.Static("/candidates", cfg.PhotoDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	h := handlers.NewHandler(locationSvc, electionSvc, candidateSvc, voteSvc, resultsSvc, settingsSvc, otpSvc, cfg)
	h.RegisterRoutes(app.Group("/api/v1"))

	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exited")
}
