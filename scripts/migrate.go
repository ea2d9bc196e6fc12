package main

import (
	"github.com/msumanth960/Votingapp/internal/config"
	"github.com/msumanth960/Votingapp/internal/repositories"
	"github.com/msumanth960/Votingapp/pkg/database"
	"github.com/msumanth960/Votingapp/pkg/logger"

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

	logrus.Info("Running migrations...")
	if err := repositories.AutoMigrate(db); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	// Ensure the singleton settings row exists so the server can load it.
	repo := repositories.NewRepository(db)
	settings, err := repo.SettingsRepo.LoadOrCreate()
	if err != nil {
		logrus.Fatalf("Failed to initialize site settings: %v", err)
	}
	logrus.Infof("Site settings ready: %s", settings.SiteName)

	logrus.Info("Migrations completed successfully")
}
