package models

// Stats is the aggregate summary over one driver's routes. It is
// recomputed on demand and never cached.
type Stats struct {
	// TotalRoutes is the number of routes owned by the driver.
	TotalRoutes int `json:"totalRoutes"`

	// CompletedRoutes counts routes whose status is "completed".
	CompletedRoutes int `json:"completedRoutes"`

	// TotalStops is the sum of stop counts over all routes.
	TotalStops int `json:"totalStops"`

	// CompletedStops counts stops whose status is "visited" across all
	// routes.
	CompletedStops int `json:"completedStops"`
}
