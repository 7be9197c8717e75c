package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rizeup/breadlog/internal/api"
	"github.com/rizeup/breadlog/internal/config"
	"github.com/rizeup/breadlog/internal/db"
)

func main() {
	cfg := config.Load()
	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	repos := db.NewRepositories(database)
	handler := api.NewHandler(repos, buildAuthenticator(cfg))

	app := fiber.New(fiber.Config{
		AppName:               "breadlog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
		if err := db.Close(database); err != nil {
			log.Printf("database close failed: %v", err)
		}
	}()

	log.Printf("breadlog listening on http://0.0.0.0:%s (db: %s, auth: %s)", cfg.Port, cfg.DBPath, cfg.AuthMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildAuthenticator(cfg config.Config) api.Authenticator {
	if cfg.AuthMode == config.AuthModeJWT {
		return api.NewJWTAuthenticator([]byte(cfg.SecretKey))
	}
	return api.NewStaticAuthenticator()
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
