package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/service"
	"github.com/routeops/route-tracker/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	getUserFn     func(ctx context.Context, userID string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockRouteService implements service.RouteService for unit tests.
type mockRouteService struct {
	createRouteFn       func(ctx context.Context, userID string, request models.CreateRouteRequest) (models.Route, error)
	listRoutesFn        func(ctx context.Context, userID string) ([]models.Route, error)
	updateRouteStatusFn func(ctx context.Context, userID, routeID, status string) (models.Route, error)
}

func (m *mockRouteService) CreateRoute(ctx context.Context, userID string, request models.CreateRouteRequest) (models.Route, error) {
	return m.createRouteFn(ctx, userID, request)
}

func (m *mockRouteService) ListRoutes(ctx context.Context, userID string) ([]models.Route, error) {
	return m.listRoutesFn(ctx, userID)
}

func (m *mockRouteService) UpdateRouteStatus(ctx context.Context, userID, routeID, status string) (models.Route, error) {
	return m.updateRouteStatusFn(ctx, userID, routeID, status)
}

// mockStatsService implements service.StatsService for unit tests.
type mockStatsService struct {
	computeStatsFn func(ctx context.Context, userID string) (models.Stats, error)
}

func (m *mockStatsService) ComputeStats(ctx context.Context, userID string) (models.Stats, error) {
	return m.computeStatsFn(ctx, userID)
}

// mockHealthService implements service.HealthService for unit tests.
type mockHealthService struct {
	checkFn func(ctx context.Context) models.HealthResponse
}

func (m *mockHealthService) Check(ctx context.Context) models.HealthResponse {
	return m.checkFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks; nil mocks are
// allowed for services a test never reaches.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	ID:      "1700000000000",
	Email:   "a@x.com",
	Name:    "Alice",
	Company: "Acme Logistics",
	Role:    models.DefaultRole,
}
