package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rahmanabdur1/productivity-app/internal/application/auth"
	"github.com/rahmanabdur1/productivity-app/internal/application/reporting"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
	infrapdf "github.com/rahmanabdur1/productivity-app/internal/infrastructure/pdf"
	"github.com/rahmanabdur1/productivity-app/internal/infrastructure/postgres"
	httpRouter "github.com/rahmanabdur1/productivity-app/internal/interfaces/http"
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
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	timeLogRepo := postgres.NewTimeLogRepository(pool)
	appUsageRepo := postgres.NewAppUsageRepository(pool)
	metricRepo := postgres.NewActivityMetricRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	deleter := postgres.NewDeletionRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, deleter)
	teamUC := usecase.NewTeamUseCase(teamRepo, userRepo, deleter)
	projectUC := usecase.NewProjectUseCase(projectRepo, deleter)
	timeLogUC := usecase.NewTimeLogUseCase(timeLogRepo)
	appUsageUC := usecase.NewAppUsageUseCase(appUsageRepo)
	metricUC := usecase.NewActivityMetricUseCase(metricRepo)
	reportUC := reporting.NewReportUseCase(projectRepo, reportRepo)
	pdfUC := reporting.NewPDFUseCase(reportUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Productivity API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		TeamUC:           teamUC,
		ProjectUC:        projectUC,
		TimeLogUC:        timeLogUC,
		AppUsageUC:       appUsageUC,
		ActivityMetricUC: metricUC,
		ReportUC:         reportUC,
		PDFUC:            pdfUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
