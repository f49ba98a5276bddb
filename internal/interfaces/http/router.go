package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahmanabdur1/productivity-app/internal/application/auth"
	"github.com/rahmanabdur1/productivity-app/internal/application/reporting"
	"github.com/rahmanabdur1/productivity-app/internal/application/usecase"
	"github.com/rahmanabdur1/productivity-app/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	TeamUC           *usecase.TeamUseCase
	ProjectUC        *usecase.ProjectUseCase
	TimeLogUC        *usecase.TimeLogUseCase
	AppUsageUC       *usecase.AppUsageUseCase
	ActivityMetricUC *usecase.ActivityMetricUseCase
	ReportUC         *reporting.ReportUseCase
	PDFUC            *reporting.PDFUseCase
	JWTSecret        string
}

// Router registers the API routes. Fixed sub-paths (me, daily_summary,
// summary) are registered before the :id routes so they are not captured as
// ids.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Token endpoint (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/users/auth", authHandler.Login)

	// Everything else requires a Bearer token. Mutations on users, teams and
	// projects are additionally gated to admins before the handler runs; the
	// use cases enforce the same rule for callers that reach them elsewhere.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Patch("/:id", adminOnly, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)
	users.Post("/:id/set_role", adminOnly, userHandler.SetRole)

	teams := protected.Group("/projects/teams")
	teamHandler := NewTeamHandler(deps.TeamUC)
	teams.Post("/", adminOnly, teamHandler.Create)
	teams.Get("/", teamHandler.List)
	teams.Get("/:id", teamHandler.GetByID)
	teams.Put("/:id", adminOnly, teamHandler.Update)
	teams.Patch("/:id", adminOnly, teamHandler.Update)
	teams.Delete("/:id", adminOnly, teamHandler.Delete)

	projects := protected.Group("/projects/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.ReportUC, deps.PDFUC)
	projects.Post("/", adminOnly, projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", adminOnly, projectHandler.Update)
	projects.Patch("/:id", adminOnly, projectHandler.Update)
	projects.Delete("/:id", adminOnly, projectHandler.Delete)
	projects.Get("/:id/progress_report", projectHandler.ProgressReport)
	projects.Get("/:id/progress_report/pdf", projectHandler.ProgressReportPDF)

	timelogs := protected.Group("/timetracking/timelogs")
	timeLogHandler := NewTimeLogHandler(deps.TimeLogUC, deps.ReportUC)
	timelogs.Post("/", timeLogHandler.Create)
	timelogs.Get("/", timeLogHandler.List)
	timelogs.Get("/daily_summary", timeLogHandler.DailySummary)
	timelogs.Get("/:id", timeLogHandler.GetByID)
	timelogs.Put("/:id", timeLogHandler.Update)
	timelogs.Patch("/:id", timeLogHandler.Update)
	timelogs.Delete("/:id", timeLogHandler.Delete)

	appusages := protected.Group("/timetracking/appusages")
	appUsageHandler := NewAppUsageHandler(deps.AppUsageUC, deps.ReportUC)
	appusages.Post("/", appUsageHandler.Create)
	appusages.Get("/", appUsageHandler.List)
	appusages.Get("/summary", appUsageHandler.Summary)
	appusages.Get("/:id", appUsageHandler.GetByID)
	appusages.Put("/:id", appUsageHandler.Update)
	appusages.Patch("/:id", appUsageHandler.Update)
	appusages.Delete("/:id", appUsageHandler.Delete)

	metrics := protected.Group("/timetracking/activitymetrics")
	metricHandler := NewActivityMetricHandler(deps.ActivityMetricUC)
	metrics.Post("/", metricHandler.Create)
	metrics.Get("/", metricHandler.List)
	metrics.Get("/:id", metricHandler.GetByID)
	metrics.Put("/:id", metricHandler.Update)
	metrics.Patch("/:id", metricHandler.Update)
	metrics.Delete("/:id", metricHandler.Delete)
}
