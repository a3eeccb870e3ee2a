package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(context.Background(), config.LLMConfig{ModelName: "gemini-2.0-flash"}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	c := &Client{logger: testLogger()}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "deadline exceeded",
			in:   context.DeadlineExceeded,
			want: generation.ErrTimeout,
		},
		{
			name: "rate limited",
			in:   genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"},
			want: generation.ErrRateLimited,
		},
		{
			name: "invalid key",
			in:   genai.APIError{Code: 401, Status: "UNAUTHENTICATED"},
			want: generation.ErrAuth,
		},
		{
			name: "forbidden",
			in:   genai.APIError{Code: 403, Status: "PERMISSION_DENIED"},
			want: generation.ErrAuth,
		},
		{
			name: "upstream timeout",
			in:   genai.APIError{Code: 504, Status: "DEADLINE_EXCEEDED"},
			want: generation.ErrTimeout,
		},
		{
			name: "server error",
			in:   genai.APIError{Code: 503, Status: "UNAVAILABLE"},
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "wrapped api error",
			in:   fmt.Errorf("call failed: %w", genai.APIError{Code: 500, Status: "INTERNAL"}),
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "other 4xx",
			in:   genai.APIError{Code: 400, Status: "INVALID_ARGUMENT"},
			want: generation.ErrGenerationFailed,
		},
		{
			name: "plain network failure",
			in:   errors.New("dial tcp: connection refused"),
			want: generation.ErrConnection,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := c.mapError(context.Background(), tc.in)
			assert.ErrorIs(t, got, tc.want)
		})
	}
}
