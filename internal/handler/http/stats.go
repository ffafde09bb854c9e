package http

import (
	"net/http"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/utils"
	"github.com/routeops/route-tracker/models"
)

func (h *Handler) driverStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, msgAccessDenied, http.StatusUnauthorized)
		return
	}

	stats, err := h.services.StatsService.ComputeStats(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during stats computation")
		writeError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.StatsResponse{Stats: stats}, http.StatusOK)
}
