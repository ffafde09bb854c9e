package service

import (
	"context"

	"github.com/routeops/route-tracker/models"
)

// AuthService covers account registration, login, and the bearer
// credential lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RouteService covers route creation, owner-scoped listing, and status
// updates. Every operation takes the resolved owner ID explicitly; no
// method re-derives identity from transport state.
type RouteService interface {
	CreateRoute(ctx context.Context, userID string, request models.CreateRouteRequest) (models.Route, error)
	ListRoutes(ctx context.Context, userID string) ([]models.Route, error)
	UpdateRouteStatus(ctx context.Context, userID, routeID, status string) (models.Route, error)
}

// StatsService computes the aggregate summary over one owner's routes.
type StatsService interface {
	ComputeStats(ctx context.Context, userID string) (models.Stats, error)
}

// HealthService reports process liveness together with the sizes of the
// in-memory collections.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}
