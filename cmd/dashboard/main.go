// dashboard serves the server-rendered web UI. It talks to the API process
// over HTTP and holds no database connection of its own.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rahmanabdur1/productivity-app/internal/gateway"
	"github.com/rahmanabdur1/productivity-app/pkg/config"
	"github.com/rahmanabdur1/productivity-app/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("api_base", cfg.Dashboard.APIBase).
		Msg("starting dashboard")

	client := gateway.NewClient(cfg.Dashboard.APIBase)
	server, err := gateway.NewServer(client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("parse templates")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-dashboard",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	server.Register(app)

	go func() {
		if err := app.Listen(cfg.Dashboard.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping dashboard...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
