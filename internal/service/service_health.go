package service

import (
	"context"
	"fmt"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/models"
)

// healthService reports liveness together with the current sizes of the
// in-memory collections, so operators can see data volume at a glance
// (and that it resets on restart, since nothing is persisted).
type healthService struct {
	userRepository  store.UserRepository
	routeRepository store.RouteRepository
	version         string

	logger *logger.Logger
}

// NewHealthService constructs a HealthService over both repositories.
// version is the application build version embedded in the health message.
func NewHealthService(userRepository store.UserRepository, routeRepository store.RouteRepository, version string, logger *logger.Logger) HealthService {
	return &healthService{
		userRepository:  userRepository,
		routeRepository: routeRepository,
		version:         version,
		logger:          logger,
	}
}

// Check returns the liveness report. It never fails: the counts are
// plain in-memory reads.
func (s *healthService) Check(ctx context.Context) models.HealthResponse {
	message := "Delivery route tracker API is running"
	if s.version != "" {
		message = fmt.Sprintf("%s (version %s)", message, s.version)
	}

	return models.HealthResponse{
		Status:  "OK",
		Message: message,
		Users:   s.userRepository.Count(ctx),
		Routes:  s.routeRepository.Count(ctx),
	}
}
