package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
)

func TestSetupLevels(t *testing.T) {
	// Restore the default logger after the test
	original := slog.Default()
	defer slog.SetDefault(original)

	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level falls back to info", "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	def := slog.Default()
	ctx := context.Background()

	// Without a stored logger, the default is returned.
	assert.Equal(t, def, FromContextOrDefault(ctx, def))

	_, ok := FromContext(ctx)
	assert.False(t, ok)

	stored := slog.Default().With(slog.String("component", "test"))
	ctx = WithLogger(ctx, stored)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, stored, got)
	assert.Equal(t, stored, FromContextOrDefault(ctx, def))
}
