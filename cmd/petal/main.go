package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/junipershade/petal/internal/activity"
	"github.com/junipershade/petal/internal/api"
	"github.com/junipershade/petal/internal/config"
	"github.com/junipershade/petal/internal/db"
	"github.com/junipershade/petal/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	appLog := logger.New(cfg)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		appLog.WithError(err).Warnf("unknown timezone %q, falling back to UTC", cfg.Timezone)
		location = time.UTC
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		appLog.WithError(err).Fatal("database init failed")
	}

	var activityLog activity.Logger = activity.NopLogger{}
	if cfg.SheetsEnabled() {
		sheetsLog, err := activity.NewSheetsLogger(context.Background(), cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID, cfg.SheetsWorksheet, appLog)
		if err != nil {
			appLog.WithError(err).Warn("activity log disabled, sheets client init failed")
		} else {
			activityLog = sheetsLog
		}
	}

	handler := api.NewHandler(database, cfg.SecretKey, location, appLog, activityLog, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Petal",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLog.WithError(err).Error("shutdown failed")
		}
	}()

	appLog.WithField("port", cfg.Port).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.WithError(err).Fatal("server stopped")
	}
	appLog.Info("server shut down")
}
