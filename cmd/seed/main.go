// Command seed migrates the database and replaces its contents with the demo dataset.
package main

import (
	"context"
	"log"
	"time"

	"realartist-backend/internal/config"
	"realartist-backend/internal/database"
	"realartist-backend/internal/demo"
	"realartist-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	lg := logger.New(cfg.LogLevel)
	defer func() { _ = lg.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sqlDB, err := database.Connect(ctx, cfg.DatabaseURL, 2)
	if err != nil {
		lg.Fatalw("failed to connect", "error", err)
	}
	defer sqlDB.Close()

	if err := database.NewMigrator(sqlDB, lg).Run(ctx); err != nil {
		lg.Fatalw("migrations failed", "error", err)
	}

	gdb, err := database.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		lg.Fatalw("failed to open gorm", "error", err)
	}

	if err := database.Seed(ctx, gdb, demo.Build(time.Now().UTC()), lg); err != nil {
		lg.Fatalw("seeding failed", "error", err)
	}
	lg.Infow("database seeded", "demo_user_id", demo.UserID)
}
