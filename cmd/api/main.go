package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aura/config"
	"aura/config/database"
	_ "aura/docs" // Swagger docs
	"aura/internal/httpserver"
	"aura/internal/task/repository/postgre"
	"aura/pkg/datemath"
	"aura/pkg/log"
)

// @title       Aura Task API
// @description Quick-capture task manager: Spanish natural-language capture, filtered boards and kanban moves.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Aura...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		if err := postgre.Migrate(ctx, db); err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return
		}
		logger.Info(ctx, "Database schema is up to date")
	}

	// 4. Date parser
	dateMathParser, err := datemath.NewParser(cfg.Capture.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Capture.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		DB:                  db,
		DateMath:            dateMathParser,
		CaptureRateLimit:    cfg.Capture.RateLimitPerMin,
		DefaultUserID:       cfg.Capture.DefaultUserID,
		ShutdownGracePeriod: cfg.HTTPServer.ShutdownTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
