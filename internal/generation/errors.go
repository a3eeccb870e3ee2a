package generation

import "errors"

// Kind is the stable error code surfaced to callers. Each kind maps to a
// distinct retry policy at the caller boundary.
type Kind string

const (
	KindTimeout            Kind = "AI_TIMEOUT"
	KindRateLimited        Kind = "AI_RATE_LIMITED"
	KindConnectionError    Kind = "AI_CONNECTION_ERROR"
	KindAuthError          Kind = "AI_AUTH_ERROR"
	KindServiceUnavailable Kind = "AI_SERVICE_UNAVAILABLE"
	KindParseError         Kind = "AI_PARSE_ERROR"
	KindEmptyResponse      Kind = "AI_EMPTY_RESPONSE"
	KindGenerationFailed   Kind = "AI_GENERATION_FAILED"
)

// Common errors returned by the generation package
var (
	// ErrTimeout is returned when a single model invocation exceeds its
	// configured deadline.
	ErrTimeout = errors.New("model call timed out")

	// ErrRateLimited is returned when the model service throttles the call.
	ErrRateLimited = errors.New("model service rate limit exceeded")

	// ErrConnection is returned when the model service cannot be reached.
	ErrConnection = errors.New("could not connect to model service")

	// ErrAuth is returned when the model service rejects the configured
	// credentials. This is a configuration-level failure; do not retry.
	ErrAuth = errors.New("model service rejected credentials")

	// ErrServiceUnavailable is returned when the model service reports a
	// server-side failure.
	ErrServiceUnavailable = errors.New("model service unavailable")

	// ErrParse is returned when the model output cannot be parsed as
	// flashcards even after repair.
	ErrParse = errors.New("could not parse model output")

	// ErrEmptyResponse is returned when the model produces no output.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrGenerationFailed is returned when the model answered a different
	// task or none of its cards survived validation.
	ErrGenerationFailed = errors.New("model produced unusable flashcards")
)

// KindOf maps an error to its stable caller-facing kind. Unknown errors map
// to KindGenerationFailed so raw provider text never leaks.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrConnection):
		return KindConnectionError
	case errors.Is(err, ErrAuth):
		return KindAuthError
	case errors.Is(err, ErrServiceUnavailable):
		return KindServiceUnavailable
	case errors.Is(err, ErrParse):
		return KindParseError
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	default:
		return KindGenerationFailed
	}
}

// IsRetryable reports whether the caller may retry the request after
// backoff. Output-shaped failures are retried only by the guaranteed-mode
// loop, never by the caller.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindTimeout, KindRateLimited, KindConnectionError, KindServiceUnavailable:
		return true
	default:
		return false
	}
}

// isOutputError reports whether the error describes unusable model output,
// the class of failures the guaranteed-mode loop absorbs and retries.
func isOutputError(err error) bool {
	switch KindOf(err) {
	case KindParseError, KindEmptyResponse, KindGenerationFailed:
		return true
	default:
		return false
	}
}
