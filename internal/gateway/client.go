// Package gateway is the presentation side of the system: a small web
// dashboard that talks to the API over HTTP with the user's bearer token and
// renders server-side HTML. It holds no database access of its own.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rahmanabdur1/productivity-app/internal/application/dto"
)

// UpstreamError marks a failure to reach or read from the API. The dashboard
// renders it as an inline banner instead of failing the page; there is no
// retry.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is a thin JSON client for the productivity API.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the API at base (e.g. http://localhost:8080).
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login exchanges credentials for a token. A 400 from the API reads as bad
// credentials; transport failures wrap into UpstreamError.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	body, _ := json.Marshal(dto.AuthRequest{Username: username, Password: password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/users/auth/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Op: "login", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed (status %d)", resp.StatusCode)
	}
	var out dto.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &UpstreamError{Op: "login decode", Err: err}
	}
	return &out, nil
}

// Get fetches path with the bearer token and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Op: "get " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode, string(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Op: "decode " + path, Err: err}
	}
	return nil
}

// DailySummary fetches the caller's per-day summary.
func (c *Client) DailySummary(ctx context.Context, token string) ([]dto.DailySummaryRecord, error) {
	var out []dto.DailySummaryRecord
	if err := c.Get(ctx, token, "/api/timetracking/timelogs/daily_summary/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppUsageSummary fetches the grouped app-usage totals.
func (c *Client) AppUsageSummary(ctx context.Context, token string) ([]dto.AppUsageSummaryRecord, error) {
	var out []dto.AppUsageSummaryRecord
	if err := c.Get(ctx, token, "/api/timetracking/appusages/summary/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Projects fetches the projects visible to the caller.
func (c *Client) Projects(ctx context.Context, token string) ([]dto.ProjectResponse, error) {
	var out []dto.ProjectResponse
	if err := c.Get(ctx, token, "/api/projects/projects/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProgressReport fetches one project's progress figures.
func (c *Client) ProgressReport(ctx context.Context, token, projectID string) (*dto.ProgressReportResponse, error) {
	var out dto.ProgressReportResponse
	if err := c.Get(ctx, token, "/api/projects/projects/"+projectID+"/progress_report/", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimeLogs fetches the time logs visible to the caller.
func (c *Client) TimeLogs(ctx context.Context, token string) ([]dto.TimeLogResponse, error) {
	var out []dto.TimeLogResponse
	if err := c.Get(ctx, token, "/api/timetracking/timelogs/", &out); err != nil {
		return nil, err
	}
	return out, nil
}
