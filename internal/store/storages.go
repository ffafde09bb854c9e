package store

import (
	"github.com/routeops/route-tracker/internal/logger"
)

// Storages aggregates every repository used by the service layer.
type Storages struct {
	UserRepository  UserRepository
	RouteRepository RouteRepository
}

// NewStorages builds the in-memory repository set. Both repositories
// share one ID source so that user and route identifiers never collide
// within a process.
func NewStorages(logger *logger.Logger) *Storages {
	ids := &idSource{}

	return &Storages{
		UserRepository:  NewUserRepository(ids, logger),
		RouteRepository: NewRouteRepository(ids, logger),
	}
}
