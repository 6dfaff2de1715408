// @title           RealArtist AI API
// @version         2025.1.0
// @description     Backend API for the RealArtist AI music studio: projects, AI artist catalog, simulated generation, analytics and royalties.

// @contact.name   API Support
// @contact.email  support@realartist.ai

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/docs"
	"realartist-backend/internal/assets"
	"realartist-backend/internal/config"
	"realartist-backend/internal/database"
	"realartist-backend/internal/generation"
	"realartist-backend/internal/logger"
	"realartist-backend/internal/server"
	"realartist-backend/internal/storage"
)

func main() {
	startedAt := time.Now()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg := logger.New(cfg.LogLevel)
	defer func() { _ = lg.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil && baseURL.Host != "" {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		lg.Fatalw("failed to initialize storage", "backend", cfg.StorageBackend, "error", err)
	}
	defer closeStore()

	assetStore, err := assets.New(cfg)
	if err != nil {
		lg.Fatalw("failed to initialize asset store", "backend", cfg.AssetBackend, "error", err)
	}

	simOpts := []generation.Option{}
	if !cfg.SimulateLatency {
		simOpts = append(simOpts, generation.WithSleeper(generation.NoSleep))
	}
	simulator := generation.NewSimulator(assetStore, simOpts...)

	router := server.NewRouter(server.Deps{
		Config:    cfg,
		Logger:    lg,
		Store:     store,
		Assets:    assetStore,
		Simulator: simulator,
		StartedAt: startedAt,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Infow("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"storage", cfg.StorageBackend,
			"assets", cfg.AssetBackend,
			"version", server.Version,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	lg.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Errorw("server forced to shutdown", "error", err)
	}
}

// openStore builds the configured storage backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, lg *zap.SugaredLogger) (storage.Storage, func(), error) {
	if cfg.StorageBackend == config.StorageBackendMemory {
		lg.Warnw("using in-memory storage, data is lost on restart")
		return storage.NewMemStorage(), func() {}, nil
	}

	db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		return nil, nil, err
	}

	if err := database.NewMigrator(db, lg).Run(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	lg.Infow("migrations completed successfully")

	closeFn := func() {
		if err := db.Close(); err != nil {
			lg.Warnw("failed to close database", "error", err)
		}
	}
	return database.NewDatabaseStorage(db), closeFn, nil
}
