package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable effectively unset for viper.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies the defaults that reproduce the original gateway
// deployment when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"AUTORES_SERVER_PORT":        "",
		"AUTORES_SERVER_LOG_LEVEL":   "",
		"AUTORES_UPSTREAM_BASE_URL":  "",
		"AUTORES_IMAGE_SERVICE_ADDR": "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "http://ceron-eng.somee.com/api/Autor", cfg.Upstream.BaseURL)
	assert.True(t, cfg.Upstream.InsecureSkipVerify)
	assert.Zero(t, cfg.Upstream.Timeout, "no timeout unless configured")
	assert.Equal(t, "localhost:5272", cfg.ImageService.Addr)
	assert.Zero(t, cfg.ImageService.Timeout)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxMemoryBytes)
	assert.Equal(t, "some-guid", cfg.Upload.DefaultGUID)
	assert.True(t, cfg.Gateway.EnrichAuthorImage)
	assert.True(t, cfg.Gateway.RawImageRoute)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"AUTORES_SERVER_PORT":                   "9090",
		"AUTORES_SERVER_LOG_LEVEL":              "debug",
		"AUTORES_UPSTREAM_BASE_URL":             "https://authors.internal/api/Autor",
		"AUTORES_UPSTREAM_TIMEOUT":              "5s",
		"AUTORES_UPSTREAM_INSECURE_SKIP_VERIFY": "false",
		"AUTORES_IMAGE_SERVICE_ADDR":            "images.internal:6000",
		"AUTORES_IMAGE_SERVICE_TIMEOUT":         "250ms",
		"AUTORES_UPLOAD_DIR":                    "/tmp/staging",
		"AUTORES_GATEWAY_RAW_IMAGE_ROUTE":       "false",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "https://authors.internal/api/Autor", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.False(t, cfg.Upstream.InsecureSkipVerify)
	assert.Equal(t, "images.internal:6000", cfg.ImageService.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.ImageService.Timeout)
	assert.Equal(t, "/tmp/staging", cfg.Upload.Dir)
	assert.True(t, cfg.Gateway.EnrichAuthorImage)
	assert.False(t, cfg.Gateway.RawImageRoute)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "Invalid port number",
			envVars:        map[string]string{"AUTORES_SERVER_PORT": "999999"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{"AUTORES_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Invalid upstream URL",
			envVars:        map[string]string{"AUTORES_UPSTREAM_BASE_URL": "not a url"},
			errorSubstring: "validation failed",
		},
		{
			name:           "Image service address without port",
			envVars:        map[string]string{"AUTORES_IMAGE_SERVICE_ADDR": "localhost"},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
