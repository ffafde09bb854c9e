package models

import "time"

// RegisterRequest is the body of the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Company  string `json:"company"`
}

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateRouteRequest is the body of the route creation endpoint.
// Every field is optional; absent values are defaulted by the route
// service.
type CreateRouteRequest struct {
	Name      string     `json:"name"`
	Stops     []Stop     `json:"stops"`
	StartTime *time.Time `json:"startTime"`
	Notes     string     `json:"notes"`
}

// UpdateRouteStatusRequest is the body of the status update endpoint.
// The status value is stored as given; there is no declared state machine.
type UpdateRouteStatusRequest struct {
	Status string `json:"status"`
}
