package models

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// UserResponse is returned by the current-user endpoint.
type UserResponse struct {
	User PublicUser `json:"user"`
}

// RoutesResponse wraps the owner-scoped route listing.
type RoutesResponse struct {
	Routes []Route `json:"routes"`
}

// RouteResponse is returned by route creation and status updates.
type RouteResponse struct {
	Message string `json:"message"`
	Route   Route  `json:"route"`
}

// StatsResponse wraps the driver statistics summary.
type StatsResponse struct {
	Stats Stats `json:"stats"`
}

// HealthResponse reports liveness plus collection sizes.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Users   int    `json:"users"`
	Routes  int    `json:"routes"`
}

// ErrorResponse is the uniform error body for every failing request.
type ErrorResponse struct {
	Error string `json:"error"`
}
