package store

import (
	"context"
	"testing"
	"time"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouteRepository(t *testing.T) RouteRepository {
	t.Helper()
	return NewRouteRepository(&idSource{}, logger.Nop())
}

func routeFixture(userID, name string) models.Route {
	now := time.Now()
	return models.Route{
		UserID:    userID,
		Name:      name,
		Stops:     []models.Stop{},
		Status:    models.RouteStatusPending,
		StartTime: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRouteRepository_CreateRoute_AssignsID(t *testing.T) {
	repo := newTestRouteRepository(t)

	created, err := repo.CreateRoute(context.Background(), routeFixture("owner-1", "R1"))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.UserID)
}

func TestRouteRepository_ListByUser_OwnerScoped(t *testing.T) {
	repo := newTestRouteRepository(t)
	ctx := context.Background()

	_, err := repo.CreateRoute(ctx, routeFixture("owner-a", "A1"))
	require.NoError(t, err)
	_, err = repo.CreateRoute(ctx, routeFixture("owner-b", "B1"))
	require.NoError(t, err)
	_, err = repo.CreateRoute(ctx, routeFixture("owner-a", "A2"))
	require.NoError(t, err)

	routes, err := repo.ListByUser(ctx, "owner-a")
	require.NoError(t, err)
	require.Len(t, routes, 2)

	// insertion order is stable
	assert.Equal(t, "A1", routes[0].Name)
	assert.Equal(t, "A2", routes[1].Name)
	for _, route := range routes {
		assert.Equal(t, "owner-a", route.UserID)
	}
}

func TestRouteRepository_ListByUser_EmptyIsNotNil(t *testing.T) {
	repo := newTestRouteRepository(t)

	routes, err := repo.ListByUser(context.Background(), "nobody")

	require.NoError(t, err)
	assert.NotNil(t, routes)
	assert.Empty(t, routes)
}

func TestRouteRepository_UpdateStatus(t *testing.T) {
	repo := newTestRouteRepository(t)
	ctx := context.Background()

	created, err := repo.CreateRoute(ctx, routeFixture("owner-a", "A1"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "owner-a", created.ID, models.RouteStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.RouteStatusCompleted, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestRouteRepository_UpdateStatus_UnknownRoute(t *testing.T) {
	repo := newTestRouteRepository(t)

	_, err := repo.UpdateStatus(context.Background(), "owner-a", "1", models.RouteStatusCompleted)

	assert.ErrorIs(t, err, ErrRouteNotFound)
}

// TestRouteRepository_UpdateStatus_OtherOwner verifies that a route held
// by another owner is indistinguishable from a missing one.
func TestRouteRepository_UpdateStatus_OtherOwner(t *testing.T) {
	repo := newTestRouteRepository(t)
	ctx := context.Background()

	created, err := repo.CreateRoute(ctx, routeFixture("owner-b", "B1"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, "owner-a", created.ID, models.RouteStatusCompleted)
	assert.ErrorIs(t, err, ErrRouteNotFound)

	// the route itself is untouched
	routes, err := repo.ListByUser(ctx, "owner-b")
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, models.RouteStatusPending, routes[0].Status)
}

func TestRouteRepository_UpdateStatus_ArbitraryValueAccepted(t *testing.T) {
	repo := newTestRouteRepository(t)
	ctx := context.Background()

	created, err := repo.CreateRoute(ctx, routeFixture("owner-a", "A1"))
	require.NoError(t, err)

	// the status set is open; no transition graph is enforced
	updated, err := repo.UpdateStatus(ctx, "owner-a", created.ID, "paused-for-lunch")
	require.NoError(t, err)
	assert.Equal(t, "paused-for-lunch", updated.Status)
}

func TestRouteRepository_Count(t *testing.T) {
	repo := newTestRouteRepository(t)
	ctx := context.Background()

	assert.Equal(t, 0, repo.Count(ctx))

	_, err := repo.CreateRoute(ctx, routeFixture("owner-a", "A1"))
	require.NoError(t, err)
	_, err = repo.CreateRoute(ctx, routeFixture("owner-b", "B1"))
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Count(ctx))
}
