package service

import (
	"context"
	"fmt"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/models"
)

// statsService is the concrete implementation of StatsService.
//
// Statistics are recomputed from the route repository on every call.
// There is no cache to invalidate; the store is expected to stay small
// enough that a full scan per request is cheaper than keeping counters
// consistent.
type statsService struct {
	routeRepository store.RouteRepository

	logger *logger.Logger
}

// NewStatsService constructs a StatsService over the given repository.
func NewStatsService(routeRepository store.RouteRepository, logger *logger.Logger) StatsService {
	return &statsService{
		routeRepository: routeRepository,
		logger:          logger,
	}
}

// ComputeStats aggregates over the owner's routes:
//   - TotalRoutes: number of routes;
//   - CompletedRoutes: routes with status "completed";
//   - TotalStops: sum of stop counts, an absent stop list counting as zero;
//   - CompletedStops: stops with status "visited" across all routes.
//
// Only routes owned by userID contribute; other owners' routes are
// invisible to the aggregation.
func (s *statsService) ComputeStats(ctx context.Context, userID string) (models.Stats, error) {
	routes, err := s.routeRepository.ListByUser(ctx, userID)
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats computation failed: %w", err)
	}

	var stats models.Stats
	for _, route := range routes {
		stats.TotalRoutes++
		if route.Status == models.RouteStatusCompleted {
			stats.CompletedRoutes++
		}

		stats.TotalStops += len(route.Stops)
		for _, stop := range route.Stops {
			if stop.Status == models.StopStatusVisited {
				stats.CompletedStops++
			}
		}
	}

	return stats, nil
}
