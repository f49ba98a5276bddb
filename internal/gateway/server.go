package gateway

import (
	"bytes"
	"embed"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionCookie = "pt_session"

// Server renders the dashboard pages. All data comes from the API client;
// upstream failures surface as a banner on the page being rendered.
type Server struct {
	client *Client
	tmpl   *template.Template
	log    *logger.Logger
}

// NewServer builds the dashboard server.
func NewServer(client *Client, log *logger.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{client: client, tmpl: tmpl, log: log}, nil
}

// Register mounts the dashboard routes on the Fiber app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/login", s.loginForm)
	app.Post("/login", s.login)
	app.Get("/logout", s.logout)
	app.Get("/", s.dashboard)
	app.Get("/projects", s.projects)
	app.Get("/timelogs", s.timeLogs)
}

type pageData struct {
	Username string
	Banner   string

	Summary   []dto.DailySummaryRecord
	AppUsage  []dto.AppUsageSummaryRecord
	Projects  []projectRow
	TimeLogs  []dto.TimeLogResponse
	LoginFail bool
}

type projectRow struct {
	Project dto.ProjectResponse
	Report  *dto.ProgressReportResponse
}

func (s *Server) loginForm(c *fiber.Ctx) error {
	return s.render(c, "login.html", pageData{})
}

func (s *Server) login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	out, err := s.client.Login(c.Context(), username, password)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			s.log.Warn().Err(err).Msg("API unreachable during login")
			return s.render(c, "login.html", pageData{Banner: "The API is unreachable. Try again later."})
		}
		return s.render(c, "login.html", pageData{LoginFail: true})
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) logout(c *fiber.Ctx) error {
	c.ClearCookie(sessionCookie)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (s *Server) dashboard(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookie)
	if token == "" {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	data := pageData{Username: GetTokenUsername(token)}

	summary, err := s.client.DailySummary(c.Context(), token)
	if err != nil {
		return s.renderUpstreamFailure(c, "dashboard.html", data, err)
	}
	appUsage, err := s.client.AppUsageSummary(c.Context(), token)
	if err != nil {
		return s.renderUpstreamFailure(c, "dashboard.html", data, err)
	}
	data.Summary = summary
	data.AppUsage = appUsage
	return s.render(c, "dashboard.html", data)
}

func (s *Server) projects(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookie)
	if token == "" {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	data := pageData{Username: GetTokenUsername(token)}

	projects, err := s.client.Projects(c.Context(), token)
	if err != nil {
		return s.renderUpstreamFailure(c, "projects.html", data, err)
	}
	for _, p := range projects {
		row := projectRow{Project: p}
		// Progress is best-effort per project; a failing report leaves the
		// row without figures rather than failing the page.
		if report, err := s.client.ProgressReport(c.Context(), token, p.ID); err == nil {
			row.Report = report
		}
		data.Projects = append(data.Projects, row)
	}
	return s.render(c, "projects.html", data)
}

func (s *Server) timeLogs(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookie)
	if token == "" {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	data := pageData{Username: GetTokenUsername(token)}

	logs, err := s.client.TimeLogs(c.Context(), token)
	if err != nil {
		return s.renderUpstreamFailure(c, "timelogs.html", data, err)
	}
	data.TimeLogs = logs
	return s.render(c, "timelogs.html", data)
}

// renderUpstreamFailure shows the page shell with an inline banner. Expired
// tokens bounce back to the login form instead.
func (s *Server) renderUpstreamFailure(c *fiber.Ctx, page string, data pageData, err error) error {
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		// Non-transport failure: most likely a rejected token.
		c.ClearCookie(sessionCookie)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	s.log.Warn().Err(err).Str("page", page).Msg("API unreachable")
	data.Banner = "The API is unreachable. Data shown may be incomplete."
	return s.render(c, page, data)
}

func (s *Server) render(c *fiber.Ctx, page string, data pageData) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		s.log.Error().Err(err).Str("page", page).Msg("template render")
		return c.Status(fiber.StatusInternalServerError).SendString("render error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
