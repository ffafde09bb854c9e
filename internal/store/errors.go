package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match exactly
	// one user record finds none.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRouteNotFound is returned when a lookup or update targets a route
	// (identified by route ID and owner ID) that does not exist. A route owned
	// by a different user yields the same error so that route existence is
	// never leaked across owners.
	ErrRouteNotFound = errors.New("route was not found")
)
