package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/internal/utils"
	"github.com/routeops/route-tracker/models"
)

func (h *Handler) listRoutes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, msgAccessDenied, http.StatusUnauthorized)
		return
	}

	routes, err := h.services.RouteService.ListRoutes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during route listing")
		writeError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.RoutesResponse{Routes: routes}, http.StatusOK)
}

func (h *Handler) createRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, msgAccessDenied, http.StatusUnauthorized)
		return
	}

	var request models.CreateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	createdRoute, err := h.services.RouteService.CreateRoute(ctx, userID, request)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during route creation")
		writeError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.RouteResponse{
		Message: "Route created successfully",
		Route:   createdRoute,
	}, http.StatusCreated)
}

func (h *Handler) updateRouteStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, msgAccessDenied, http.StatusUnauthorized)
		return
	}

	routeID := chi.URLParam(r, "routeID")

	var request models.UpdateRouteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updatedRoute, err := h.services.RouteService.UpdateRouteStatus(ctx, userID, routeID, request.Status)
	if err != nil {
		switch {
		// Covers both a missing route and a route held by another
		// owner; the two must be indistinguishable on the wire.
		case errors.Is(err, store.ErrRouteNotFound):
			log.Err(err).Str("routeID", routeID).Msg("route not found")
			writeError(w, msgRouteNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during route status update")
			writeError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RouteResponse{
		Message: "Route status updated successfully",
		Route:   updatedRoute,
	}, http.StatusOK)
}
