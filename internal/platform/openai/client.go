// Package openai provides a generation.ModelClient backed by the OpenAI
// chat completions API, or any service exposing a compatible endpoint via
// a base URL override.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/generation"
)

// ErrMissingAPIKey is returned when the client is constructed without a key.
var ErrMissingAPIKey = errors.New("openai API key is required")

const systemMessage = "You are an expert educator who writes precise, atomic flashcards. " +
	"You always respond with the exact JSON structure requested and nothing else."

// Client implements generation.ModelClient against the chat completions API.
type Client struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewClient creates an OpenAI-backed model client from the LLM
// configuration. OpenAIBaseURL, when set, redirects calls to a compatible
// third-party endpoint.
func NewClient(cfg config.LLMConfig, log *slog.Logger) (*Client, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if log == nil {
		log = slog.Default()
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.ModelName,
		logger: log.With(slog.String("component", "openai_client")),
	}, nil
}

// Complete sends the prompt as a single-turn chat and returns the raw
// completion text. Provider failures are mapped onto the generation error
// taxonomy.
func (c *Client) Complete(ctx context.Context, prompt string, params generation.CompletionParams) (generation.ModelResponse, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: params.Temperature,
	}
	if params.MaxOutputTokens > 0 {
		req.MaxTokens = params.MaxOutputTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return generation.ModelResponse{}, c.mapError(ctx, err)
	}
	if len(resp.Choices) == 0 {
		return generation.ModelResponse{}, fmt.Errorf("%w: no choices returned", generation.ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	out := generation.ModelResponse{Text: choice.Message.Content}
	if choice.FinishReason == openai.FinishReasonLength {
		out.FinishReason = generation.FinishReasonLength
	}

	c.logger.DebugContext(ctx, "openai completion finished",
		slog.String("model", c.model),
		slog.Int("response_length", len(out.Text)),
		slog.String("finish_reason", string(choice.FinishReason)))
	return out, nil
}

// mapError converts go-openai errors into the generation taxonomy.
func (c *Client) mapError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	if status != 0 {
		c.logger.WarnContext(ctx, "openai API error", slog.Int("status_code", status))
		switch {
		case status == http.StatusTooManyRequests:
			return fmt.Errorf("%w: status %d", generation.ErrRateLimited, status)
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return fmt.Errorf("%w: status %d", generation.ErrAuth, status)
		case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
			return fmt.Errorf("%w: status %d", generation.ErrTimeout, status)
		case status >= 500:
			return fmt.Errorf("%w: status %d", generation.ErrServiceUnavailable, status)
		default:
			return fmt.Errorf("%w: status %d", generation.ErrGenerationFailed, status)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", generation.ErrConnection, err)
}
