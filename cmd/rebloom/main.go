package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/solenne/rebloom/internal/api"
	"github.com/solenne/rebloom/internal/db"
	"github.com/solenne/rebloom/internal/security"
	"github.com/solenne/rebloom/internal/services"
	"go.uber.org/zap"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "rebloom.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zapLogger.Sync()

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		secretKey, err = security.SessionSecret()
		if err != nil {
			zapLogger.Fatal("generate session secret", zap.Error(err))
		}
		zapLogger.Warn("SECRET_KEY not set, generated a per-start secret; sessions will not survive restarts")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	store := db.NewRecoveryStore(database, zapLogger)
	scheduler := services.NewLogScheduler(zapLogger)
	service := services.NewRecoveryService(store, scheduler, location, zapLogger)
	service.Load()

	handler := api.NewHandler(service, secretKey, location, cookieSecure, zapLogger)

	app := fiber.New(fiber.Config{
		AppName:               "Rebloom",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zapLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("Rebloom listening",
		zap.String("addr", "http://0.0.0.0:"+port),
		zap.String("db", dbPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + port); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
