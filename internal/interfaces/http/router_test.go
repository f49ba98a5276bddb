package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/rahmanabdur1/productivity-app/internal/interfaces/http"
)

// buildRouterApp mounts the full router. Handlers are never reached in these
// tests, so the use cases stay nil.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})
	return app
}

func routedRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_AdminGateBlocksNonAdminWrites(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "employee")

	cases := []struct{ method, path string }{
		{http.MethodPost, "/api/users/"},
		{http.MethodPatch, "/api/users/u1"},
		{http.MethodDelete, "/api/users/u1"},
		{http.MethodPost, "/api/users/u1/set_role"},
		{http.MethodPost, "/api/projects/teams/"},
		{http.MethodPut, "/api/projects/teams/t1"},
		{http.MethodDelete, "/api/projects/teams/t1"},
		{http.MethodPost, "/api/projects/projects/"},
		{http.MethodPatch, "/api/projects/projects/p1"},
		{http.MethodDelete, "/api/projects/projects/p1"},
	}
	for _, tc := range cases {
		resp := routedRequest(t, app, tc.method, tc.path, token)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Contains(t, string(body), "FORBIDDEN", "%s %s", tc.method, tc.path)
	}
}

func TestRouter_AdminGateRequiresToken(t *testing.T) {
	app := buildRouterApp()

	resp := routedRequest(t, app, http.MethodPost, "/api/users/", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
