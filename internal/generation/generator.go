package generation

import "context"

// FinishReasonLength signals the model hit its output token limit and the
// response is likely truncated mid-JSON.
const FinishReasonLength = "length"

// ResponseFormatJSON asks providers that support structured output to emit
// raw JSON without markdown wrapping.
const ResponseFormatJSON = "json"

// CompletionParams tune a single model invocation.
type CompletionParams struct {
	Temperature     float32
	MaxOutputTokens int

	// ResponseFormat hints the provider at structured output, e.g.
	// "json". Providers that cannot honor it ignore it.
	ResponseFormat string
}

// ModelResponse is the raw outcome of one model invocation.
type ModelResponse struct {
	Text         string
	FinishReason string
}

// ModelClient is the boundary to the underlying language model service.
// Implementations translate provider failures into this package's error
// taxonomy so the orchestrator never sees provider-specific errors.
type ModelClient interface {
	Complete(ctx context.Context, prompt string, params CompletionParams) (ModelResponse, error)
}
