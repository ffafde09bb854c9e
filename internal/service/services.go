package service

import (
	"github.com/routeops/route-tracker/internal/config"
	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
)

type Services struct {
	AuthService   AuthService
	RouteService  RouteService
	StatsService  StatsService
	HealthService HealthService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, logger),
		RouteService:  NewRouteService(storages.RouteRepository, logger),
		StatsService:  NewStatsService(storages.RouteRepository, logger),
		HealthService: NewHealthService(storages.UserRepository, storages.RouteRepository, cfg.Version, logger),
	}
}
