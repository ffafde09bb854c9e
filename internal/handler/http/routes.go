package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
	})

	// owner-scoped routes behind the bearer credential gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/me", h.currentUser)
		r.Get("/api/routes", h.listRoutes)
		r.Post("/api/routes", h.createRoute)
		r.Patch("/api/routes/{routeID}/status", h.updateRouteStatus)
		r.Get("/api/drivers/stats", h.driverStats)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
