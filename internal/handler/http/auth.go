package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/service"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/internal/utils"
	"github.com/routeops/route-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, msgUserAlreadyExists, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: "User registered successfully",
		Token:   token.Value,
		User:    registeredUser.Public(),
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		// An unknown email and a wrong password are indistinguishable
		// on the wire.
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			writeError(w, msgInvalidCredentials, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		Token:   token.Value,
		User:    foundUser.Public(),
	}, http.StatusOK)
}

// currentUser is the only authenticated endpoint that verifies the
// credential's account still exists; everywhere else the recovered ID is
// trusted as-is.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, msgAccessDenied, http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("id", userID).Msg("user behind token no longer exists")
			writeError(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			writeError(w, msgInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.UserResponse{User: foundUser.Public()}, http.StatusOK)
}
