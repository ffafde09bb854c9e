package service

import (
	"context"
	"fmt"
	"time"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/models"
)

// DefaultRouteName is used when a creation request carries no name.
const DefaultRouteName = "New Route"

// routeService is the concrete implementation of RouteService.
type routeService struct {
	routeRepository store.RouteRepository

	logger *logger.Logger
}

// NewRouteService constructs a RouteService over the given repository.
func NewRouteService(routeRepository store.RouteRepository, logger *logger.Logger) RouteService {
	return &routeService{
		routeRepository: routeRepository,
		logger:          logger,
	}
}

// CreateRoute stores a new route for userID, applying defaults for every
// absent field: name "New Route", empty stop list, start time now,
// status "pending". CreatedAt and UpdatedAt are both set to creation
// time. The owner ID is taken on trust; no account lookup happens here.
func (s *routeService) CreateRoute(ctx context.Context, userID string, request models.CreateRouteRequest) (models.Route, error) {
	log := logger.FromContext(ctx)

	now := time.Now()

	route := models.Route{
		UserID:    userID,
		Name:      request.Name,
		Stops:     request.Stops,
		Notes:     request.Notes,
		Status:    models.RouteStatusPending,
		StartTime: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if route.Name == "" {
		route.Name = DefaultRouteName
	}
	if route.Stops == nil {
		route.Stops = []models.Stop{}
	}
	if request.StartTime != nil {
		route.StartTime = *request.StartTime
	}

	createdRoute, err := s.routeRepository.CreateRoute(ctx, route)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("route creation ended with error")
		return models.Route{}, fmt.Errorf("route creation ended with error: %w", err)
	}

	log.Debug().Str("id", createdRoute.ID).Str("userID", userID).Msg("route created")

	return createdRoute, nil
}

// ListRoutes returns every route owned by userID in creation order.
func (s *routeService) ListRoutes(ctx context.Context, userID string) ([]models.Route, error) {
	routes, err := s.routeRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("route listing ended with error: %w", err)
	}

	return routes, nil
}

// UpdateRouteStatus sets the status of the owner's route and refreshes
// its UpdatedAt. The status value is stored as given — there is no
// transition graph to enforce. A route that does not exist under this
// owner yields a wrapped store.ErrRouteNotFound.
func (s *routeService) UpdateRouteStatus(ctx context.Context, userID, routeID, status string) (models.Route, error) {
	log := logger.FromContext(ctx)

	updatedRoute, err := s.routeRepository.UpdateStatus(ctx, userID, routeID, status)
	if err != nil {
		log.Err(err).Str("routeID", routeID).Str("userID", userID).Msg("route status update failed")
		return models.Route{}, fmt.Errorf("route status update failed: %w", err)
	}

	log.Debug().Str("id", updatedRoute.ID).Str("status", status).Msg("route status updated")

	return updatedRoute, nil
}
