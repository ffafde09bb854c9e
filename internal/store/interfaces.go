package store

import (
	"context"

	"github.com/routeops/route-tracker/models"
)

// UserRepository is the data-access contract for registered accounts.
// Accounts are created once and never updated or deleted.
type UserRepository interface {
	// CreateUser stores a new account and returns it. Fails with
	// ErrEmailAlreadyExists if another account holds the same email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Fails with ErrNoUserWasFound if no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its ID.
	// Fails with ErrNoUserWasFound if no account matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// Count returns the number of stored accounts.
	Count(ctx context.Context) int
}

// RouteRepository is the data-access contract for delivery routes.
// The store is append-only: routes are never deleted, and the only
// mutation is the status update.
type RouteRepository interface {
	// CreateRoute stores a new route and returns it. No check is made
	// that the owner account exists.
	CreateRoute(ctx context.Context, route models.Route) (models.Route, error)

	// ListByUser returns all routes owned by userID in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.Route, error)

	// UpdateStatus sets the status of the route matching both routeID
	// and userID and refreshes its UpdatedAt. Fails with ErrRouteNotFound
	// when no route matches, including when the route exists under a
	// different owner.
	UpdateStatus(ctx context.Context, userID, routeID, status string) (models.Route, error)

	// Count returns the number of stored routes across all owners.
	Count(ctx context.Context) int
}
