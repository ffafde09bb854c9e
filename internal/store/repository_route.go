package store

import (
	"context"
	"sync"
	"time"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/models"
)

// routeRepository is the in-memory implementation of [RouteRepository].
//
// Routes are kept in a single append-only slice, so insertion order is
// stable and ListByUser returns each owner's routes in creation order.
// A single mutex linearizes creates and status updates; two concurrent
// updates of the same route cannot lose a write.
type routeRepository struct {
	logger *logger.Logger

	mu     sync.Mutex
	routes []models.Route
	ids    *idSource
}

// NewRouteRepository constructs an empty in-memory [RouteRepository].
func NewRouteRepository(ids *idSource, logger *logger.Logger) RouteRepository {
	logger.Debug().Msg("creating route repository")
	return &routeRepository{
		logger: logger,
		ids:    ids,
	}
}

// CreateRoute stores a new route and returns it with a server-assigned
// ID. The owner is taken from route.UserID as-is; no existence check is
// made against the user collection.
func (r *routeRepository) CreateRoute(ctx context.Context, route models.Route) (models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	route.ID = r.ids.Next()
	r.routes = append(r.routes, route)

	return route, nil
}

// ListByUser returns copies of all routes owned by userID, in insertion
// order. The result is never nil so that it serializes as [] rather
// than null.
func (r *routeRepository) ListByUser(ctx context.Context, userID string) ([]models.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := make([]models.Route, 0)
	for _, route := range r.routes {
		if route.UserID == userID {
			owned = append(owned, route)
		}
	}

	return owned, nil
}

// UpdateStatus mutates the route matching both routeID and userID.
// A route held by a different owner is indistinguishable from a missing
// one: both yield ErrRouteNotFound.
func (r *routeRepository) UpdateStatus(ctx context.Context, userID, routeID, status string) (models.Route, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.routes {
		if r.routes[i].ID == routeID && r.routes[i].UserID == userID {
			r.routes[i].Status = status
			r.routes[i].UpdatedAt = time.Now()
			return r.routes[i], nil
		}
	}

	log.Debug().Str("routeID", routeID).Str("userID", userID).Msg("route not found for status update")
	return models.Route{}, ErrRouteNotFound
}

// Count returns the number of stored routes across all owners.
func (r *routeRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.routes)
}
