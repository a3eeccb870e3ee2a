// Package gemini provides a generation.ModelClient backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/genai"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/generation"
)

// ErrMissingAPIKey is returned when the client is constructed without a key.
var ErrMissingAPIKey = errors.New("gemini API key is required")

// Client implements generation.ModelClient against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewClient creates a Gemini-backed model client from the LLM configuration.
func NewClient(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if log == nil {
		log = slog.Default()
	}

	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client: inner,
		model:  cfg.ModelName,
		logger: log.With(slog.String("component", "gemini_client")),
	}, nil
}

// Complete sends the prompt to the model and returns its raw text output.
// Provider failures are mapped onto the generation error taxonomy so that
// callers never see transport-specific error types.
func (c *Client) Complete(ctx context.Context, prompt string, params generation.CompletionParams) (generation.ModelResponse, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(params.Temperature),
	}
	if params.MaxOutputTokens > 0 {
		genCfg.MaxOutputTokens = int32(params.MaxOutputTokens)
	}
	if params.ResponseFormat == generation.ResponseFormatJSON {
		genCfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
	if err != nil {
		return generation.ModelResponse{}, c.mapError(ctx, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return generation.ModelResponse{}, fmt.Errorf("%w: no candidates returned", generation.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return generation.ModelResponse{}, fmt.Errorf("%w: content blocked by safety filters", generation.ErrGenerationFailed)
	}

	text := resp.Text()
	if text == "" {
		return generation.ModelResponse{}, fmt.Errorf("%w: candidate contained no text", generation.ErrEmptyResponse)
	}

	out := generation.ModelResponse{Text: text}
	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		out.FinishReason = generation.FinishReasonLength
	}

	c.logger.DebugContext(ctx, "gemini completion finished",
		slog.String("model", c.model),
		slog.Int("response_length", len(text)),
		slog.String("finish_reason", string(candidate.FinishReason)))
	return out, nil
}

// mapError converts Gemini transport errors into the generation taxonomy.
func (c *Client) mapError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		c.logger.WarnContext(ctx, "gemini API error",
			slog.Int("status_code", apiErr.Code),
			slog.String("status", apiErr.Status))
		switch {
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %s", generation.ErrRateLimited, apiErr.Status)
		case apiErr.Code == 401 || apiErr.Code == 403:
			return fmt.Errorf("%w: %s", generation.ErrAuth, apiErr.Status)
		case apiErr.Code == 408 || apiErr.Code == 504:
			return fmt.Errorf("%w: %s", generation.ErrTimeout, apiErr.Status)
		case apiErr.Code >= 500:
			return fmt.Errorf("%w: %s", generation.ErrServiceUnavailable, apiErr.Status)
		default:
			return fmt.Errorf("%w: gemini returned status %d", generation.ErrGenerationFailed, apiErr.Code)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", generation.ErrConnection, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrConnection, err)
}
