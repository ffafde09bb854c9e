package http

import (
	"net/http"

	"github.com/routeops/route-tracker/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Check(r.Context())

	utils.WriteJSON(w, report, http.StatusOK)
}
