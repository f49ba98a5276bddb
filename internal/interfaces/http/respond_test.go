package http

import (
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
	"github.com/rahmanabdur1/productivity-app/internal/domain"
)

func TestFail_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ErrValidation, nethttp.StatusBadRequest, "VALIDATION"},
		{"forbidden", domain.ErrForbidden, nethttp.StatusForbidden, "FORBIDDEN"},
		{"not found", domain.ErrNotFound, nethttp.StatusNotFound, "NOT_FOUND"},
		{"duplicate", domain.ErrDuplicate, nethttp.StatusConflict, "DUPLICATE"},
		{"wrapped", fmt.Errorf("get team: %w", domain.ErrNotFound), nethttp.StatusNotFound, "NOT_FOUND"},
		{"unknown", errors.New("connection reset"), nethttp.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error { return fail(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
