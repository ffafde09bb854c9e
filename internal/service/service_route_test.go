package service

import (
	"context"
	"testing"
	"time"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouteService(t *testing.T) RouteService {
	t.Helper()
	storages := store.NewStorages(logger.Nop())
	return NewRouteService(storages.RouteRepository, logger.Nop())
}

func TestRouteService_CreateRoute_Defaults(t *testing.T) {
	routes := newTestRouteService(t)

	created, err := routes.CreateRoute(context.Background(), "owner-1", models.CreateRouteRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.UserID)
	assert.Equal(t, DefaultRouteName, created.Name)
	assert.NotNil(t, created.Stops)
	assert.Empty(t, created.Stops)
	assert.Equal(t, models.RouteStatusPending, created.Status)
	assert.False(t, created.StartTime.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestRouteService_CreateRoute_GivenValues(t *testing.T) {
	routes := newTestRouteService(t)

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	created, err := routes.CreateRoute(context.Background(), "owner-1", models.CreateRouteRequest{
		Name:      "Morning deliveries",
		Stops:     []models.Stop{{Address: "12 Main St", Status: "pending"}},
		StartTime: &start,
		Notes:     "gate code 4711",
	})

	require.NoError(t, err)
	assert.Equal(t, "Morning deliveries", created.Name)
	assert.Equal(t, start, created.StartTime)
	assert.Equal(t, "gate code 4711", created.Notes)
	require.Len(t, created.Stops, 1)
	assert.Equal(t, "12 Main St", created.Stops[0].Address)
}

func TestRouteService_ListRoutes(t *testing.T) {
	routes := newTestRouteService(t)
	ctx := context.Background()

	_, err := routes.CreateRoute(ctx, "owner-1", models.CreateRouteRequest{Name: "R1"})
	require.NoError(t, err)
	_, err = routes.CreateRoute(ctx, "owner-2", models.CreateRouteRequest{Name: "other"})
	require.NoError(t, err)

	listed, err := routes.ListRoutes(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "R1", listed[0].Name)
}

func TestRouteService_UpdateRouteStatus(t *testing.T) {
	routes := newTestRouteService(t)
	ctx := context.Background()

	created, err := routes.CreateRoute(ctx, "owner-1", models.CreateRouteRequest{Name: "R1"})
	require.NoError(t, err)

	updated, err := routes.UpdateRouteStatus(ctx, "owner-1", created.ID, models.RouteStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.RouteStatusCompleted, updated.Status)
}

func TestRouteService_UpdateRouteStatus_CrossOwner(t *testing.T) {
	routes := newTestRouteService(t)
	ctx := context.Background()

	created, err := routes.CreateRoute(ctx, "owner-2", models.CreateRouteRequest{Name: "other"})
	require.NoError(t, err)

	_, err = routes.UpdateRouteStatus(ctx, "owner-1", created.ID, models.RouteStatusCompleted)
	assert.ErrorIs(t, err, store.ErrRouteNotFound)
}
