package http

import (
	"context"
	"net/http"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/utils"
)

// auth is the HTTP middleware that enforces bearer-credential
// authentication — the single authorization gate shared by every
// protected endpoint.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, recovers the embedded account ID via
// [service.AuthService.ParseToken], and — on success — stores that ID in
// the request context under [utils.UserIDCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests with HTTP 401 and the fixed body
// {"error":"Access denied"} in the following cases:
//   - The "Authorization" header is absent.
//   - The header value cannot be split into scheme and token.
//   - The token does not carry the expected credential prefix.
//
// The scheme word ("Bearer") is discarded without verification, and no
// check is performed that an account with the recovered ID still exists;
// both behaviors are part of the preserved wire contract. All rejection
// events are logged using the context-scoped logger obtained via
// [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, msgAccessDenied, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			writeError(w, msgAccessDenied, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, msgAccessDenied, http.StatusUnauthorized)
			return
		}

		// Store the recovered account ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
