package http

import (
	"errors"
	"net/http"

	"github.com/routeops/route-tracker/internal/utils"
	"github.com/routeops/route-tracker/models"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into two space-separated parts
	// (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Error body strings fixed by the wire contract. Clients match on these
// values, so they must not change.
const (
	msgAccessDenied       = "Access denied"
	msgUserAlreadyExists  = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
	msgRouteNotFound      = "Route not found"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgInternalError      = "Internal server error"
)

// writeError sends the uniform JSON error body with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
