// Package client provides a typed API client for the route-tracker
// server. It wraps resty and keeps the bearer credential obtained from
// register/login, attaching it to every subsequent request.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/routeops/route-tracker/internal/utils"
	"github.com/routeops/route-tracker/models"
)

// Errors mapped from well-known API responses. Anything else surfaces as
// a wrapped status error.
var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrNotFound          = errors.New("not found")
)

// Config holds connection settings for the API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a stateful API client: after Register or Login it stores the
// issued bearer credential and sends it on every authenticated call.
// Safe for concurrent use.
type Client struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string
}

// New builds a Client for the given server. Empty fields fall back to
// localhost and a 15-second timeout.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := utils.NewHTTPClient()
	cli.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli}
}

// SetToken replaces the stored bearer credential.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the stored bearer credential.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a new account and stores the issued credential.
func (c *Client) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	var result models.AuthResponse
	var apiErr models.ErrorResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(result.Token)
	return result, nil
}

// Login authenticates an existing account and stores the issued credential.
func (c *Client) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var result models.AuthResponse
	var apiErr models.ErrorResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(result.Token)
	return result, nil
}

// CurrentUser fetches the account behind the stored credential.
func (c *Client) CurrentUser(ctx context.Context) (models.PublicUser, error) {
	var result models.UserResponse
	var apiErr models.ErrorResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/auth/me")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return models.PublicUser{}, err
	}

	return result.User, nil
}

// CreateRoute creates a route owned by the authenticated driver.
func (c *Client) CreateRoute(ctx context.Context, request models.CreateRouteRequest) (models.Route, error) {
	var result models.RouteResponse
	var apiErr models.ErrorResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		SetError(&apiErr).
		Post("/api/routes")
	if err != nil {
		return models.Route{}, fmt.Errorf("create route request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return models.Route{}, err
	}

	return result.Route, nil
}

// ListRoutes returns the authenticated driver's routes.
func (c *Client) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var result models.RoutesResponse
	var apiErr models.ErrorResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/routes")
	if err != nil {
		return nil, fmt.Errorf("list routes request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return nil, err
	}

	return result.Routes, nil
}

// UpdateRouteStatus sets the status of one of the driver's routes.
func (c *Client) UpdateRouteStatus(ctx context.Context, routeID, status string) (models.Route, error) {
	var result models.RouteResponse
	var apiErr models.ErrorResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateRouteStatusRequest{Status: status}).
		SetResult(&result).
		SetError(&apiErr).
		Patch(fmt.Sprintf("/api/routes/%s/status", routeID))
	if err != nil {
		return models.Route{}, fmt.Errorf("update route status request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return models.Route{}, err
	}

	return result.Route, nil
}

// Stats returns the driver's aggregate statistics.
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var result models.StatsResponse
	var apiErr models.ErrorResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/drivers/stats")
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapAPIError(resp, apiErr); err != nil {
		return models.Stats{}, err
	}

	return result.Stats, nil
}

// Health probes the unauthenticated liveness endpoint.
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var result models.HealthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if resp.IsError() {
		return models.HealthResponse{}, fmt.Errorf("health request: unexpected status %d", resp.StatusCode())
	}

	return result, nil
}

// authorized returns a request primed with the stored bearer credential.
func (c *Client) authorized() *resty.Request {
	return c.client.R().SetHeader("Authorization", "Bearer "+c.Token())
}

// mapAPIError converts a non-2xx response into one of the package's
// sentinel errors, falling back to a status error carrying the server's
// message.
func mapAPIError(resp *resty.Response, apiErr models.ErrorResponse) error {
	if !resp.IsError() {
		return nil
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return ErrNotFound
	case apiErr.Error == "User already exists":
		return ErrUserAlreadyExists
	}

	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), apiErr.Error)
}
