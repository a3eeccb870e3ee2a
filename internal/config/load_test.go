package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function that restores the original values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// baseEnv returns the minimum environment for a valid Load call.
func baseEnv() map[string]string {
	return map[string]string{
		"STUDYMAXX_DATABASE_URL":       "postgres://localhost:5432/studymaxx",
		"STUDYMAXX_AUTH_JWT_SECRET":    "0123456789abcdef0123456789abcdef",
		"STUDYMAXX_LLM_GEMINI_API_KEY": "test-api-key",
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, baseEnv())
	defer cleanup()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 60, cfg.LLM.RequestTimeoutSeconds)
	assert.Equal(t, 5, cfg.Quota.FreeDailyLimit)
	assert.Equal(t, 25, cfg.Quota.FreeMaxCardsPerSet)
	assert.Equal(t, 2, cfg.Quota.AnonymousDailyLimit)
	assert.Equal(t, "English", cfg.Classify.FallbackLanguage)
}

func TestLoadEnvOverrides(t *testing.T) {
	env := baseEnv()
	env["STUDYMAXX_SERVER_PORT"] = "9090"
	env["STUDYMAXX_SERVER_LOG_LEVEL"] = "debug"
	env["STUDYMAXX_QUOTA_FREE_DAILY_LIMIT"] = "10"
	cleanup := setupEnv(t, env)
	defer cleanup()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Quota.FreeDailyLimit)
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		override map[string]string
	}{
		{
			name:     "short jwt secret",
			override: map[string]string{"STUDYMAXX_AUTH_JWT_SECRET": "too-short"},
		},
		{
			name:     "invalid log level",
			override: map[string]string{"STUDYMAXX_SERVER_LOG_LEVEL": "verbose"},
		},
		{
			name:     "invalid provider",
			override: map[string]string{"STUDYMAXX_LLM_PROVIDER": "mistral"},
		},
		{
			name:     "missing database url",
			override: map[string]string{"STUDYMAXX_DATABASE_URL": ""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := baseEnv()
			for k, v := range tc.override {
				env[k] = v
			}
			cleanup := setupEnv(t, env)
			defer cleanup()

			// Empty value behaves like unset for the required check.
			if v, ok := tc.override["STUDYMAXX_DATABASE_URL"]; ok && v == "" {
				os.Unsetenv("STUDYMAXX_DATABASE_URL")
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
