package models

import "time"

// Route status values observed by the statistics aggregator. The status
// field itself is an open string set: handlers accept any value.
const (
	RouteStatusPending   = "pending"
	RouteStatusCompleted = "completed"
)

// StopStatusVisited marks a stop as completed for statistics purposes.
const StopStatusVisited = "visited"

// Route is a delivery route owned by exactly one driver. Ownership is
// set at creation and never reassigned; all reads and mutations are
// scoped by UserID.
type Route struct {
	// ID is the unique route identifier, assigned at creation.
	ID string `json:"id"`

	// UserID is the ID of the owning driver account.
	UserID string `json:"userId"`

	// Name is a free-text label, defaulted when absent.
	Name string `json:"name"`

	// Stops is the ordered stop sequence; may be empty.
	Stops []Stop `json:"stops"`

	// StartTime is the scheduled start, defaulted to creation time.
	StartTime time.Time `json:"startTime"`

	// Notes is optional free text.
	Notes string `json:"notes"`

	// Status is an open string state; "pending" at creation. There is
	// no enforced transition graph.
	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stop is one element of a route's stop sequence. All fields are
// optional free text except Status, which drives the completed-stops
// statistic when equal to StopStatusVisited.
type Stop struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Status  string `json:"status,omitempty"`
}
