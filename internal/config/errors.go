package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after all sources are merged.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a listen address without a port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
