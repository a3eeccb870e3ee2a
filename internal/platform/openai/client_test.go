package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(config.LLMConfig{ModelName: "gpt-4o-mini"}, nil)
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
			in:   &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests},
			want: generation.ErrRateLimited,
		},
		{
			name: "unauthorized",
			in:   &openai.APIError{HTTPStatusCode: http.StatusUnauthorized},
			want: generation.ErrAuth,
		},
		{
			name: "gateway timeout",
			in:   &openai.APIError{HTTPStatusCode: http.StatusGatewayTimeout},
			want: generation.ErrTimeout,
		},
		{
			name: "server error",
			in:   &openai.APIError{HTTPStatusCode: http.StatusInternalServerError},
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "wrapped request error",
			in:   fmt.Errorf("send: %w", &openai.RequestError{HTTPStatusCode: http.StatusServiceUnavailable}),
			want: generation.ErrServiceUnavailable,
		},
		{
			name: "bad request",
			in:   &openai.APIError{HTTPStatusCode: http.StatusBadRequest},
			want: generation.ErrGenerationFailed,
		},
		{
			name: "connection refused",
			in:   errors.New("dial tcp 127.0.0.1:443: connection refused"),
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
