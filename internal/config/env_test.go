package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("SERVER_ADDRESS", "localhost:4000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("CONFIG", "/tmp/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "never")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestApplyDefaults(t *testing.T) {
	var cfg StructuredConfig
	cfg.applyDefaults()
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)

	cfg = StructuredConfig{Server: Server{HTTPAddress: "localhost:9000"}}
	cfg.applyDefaults()
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

func TestValidate(t *testing.T) {
	valid := StructuredConfig{Server: Server{HTTPAddress: "localhost:3000"}}
	assert.NoError(t, valid.validate())

	invalid := StructuredConfig{Server: Server{HTTPAddress: "localhost"}}
	assert.ErrorIs(t, invalid.validate(), ErrInvalidServerConfigs)
}
