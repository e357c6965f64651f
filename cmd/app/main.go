package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fastroute/cmd"
	"fastroute/internal/adapters/out/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if configs.DatabaseConfigured() {
		db, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		gormDB = db
	} else {
		logger.Info("No database configured, using in-memory store")
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	if err := root.CreateSeeder().Run(context.Background()); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	if err := root.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer root.JobManager().StopAll()

	e := echo.New()
	e.HideBanner = true
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
			logger.Info("HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := root.Engine().Shutdown(ctx); err != nil {
		logger.Error("Simulation engine shutdown failed", "error", err)
	}
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; container deployments pass real env vars.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8000"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		SimTickInterval: durationEnv("SIM_TICK_INTERVAL"),
		SimAutoStart:    os.Getenv("SIM_AUTO_START") != "false",
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// durationEnv parses a duration variable. Empty or malformed values return
// zero, which selects the engine's default tick.
func durationEnv(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}
