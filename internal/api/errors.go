package api

import (
	"errors"
	"net/http"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/extraction"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/generation"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/quota"
)

// MapErrorToStatusCode maps pipeline errors onto HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var extractionErr *domain.ExtractionError

	switch {
	case errors.Is(err, quota.ErrDailyLimitReached):
		return http.StatusTooManyRequests

	case errors.As(err, &extractionErr),
		errors.Is(err, extraction.ErrUnsupportedSource),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrTextTooShort),
		errors.Is(err, domain.ErrTargetCountOutOfRange),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrIncompleteLanguagePair),
		errors.Is(err, domain.ErrEmptyContent):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrTimeout):
		return http.StatusGatewayTimeout

	case errors.Is(err, generation.ErrRateLimited),
		errors.Is(err, generation.ErrAuth),
		errors.Is(err, generation.ErrConnection),
		errors.Is(err, generation.ErrServiceUnavailable),
		errors.Is(err, generation.ErrParse),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a stable, user-facing message for err. The
// underlying detail goes to the logs, never to the client.
func GetSafeErrorMessage(err error) string {
	var extractionErr *domain.ExtractionError
	if errors.As(err, &extractionErr) {
		// Extraction rejections carry a caller-actionable reason.
		return extractionErr.Error()
	}

	switch {
	case errors.Is(err, quota.ErrDailyLimitReached):
		return "Daily generation limit reached. Try again tomorrow or upgrade your plan."
	case errors.Is(err, extraction.ErrUnsupportedSource):
		return "Unsupported file type."
	case errors.Is(err, domain.ErrTextTooShort):
		return "The material is too short to generate flashcards from."
	case errors.Is(err, domain.ErrTargetCountOutOfRange):
		return "Requested flashcard count is out of range."
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Invalid difficulty level."
	case errors.Is(err, domain.ErrIncompleteLanguagePair):
		return "Vocabulary mode needs both a known and a learning language."
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmptyContent):
		return "Invalid request."
	case errors.Is(err, generation.ErrTimeout):
		return "The AI service took too long to respond. Please try again."
	case errors.Is(err, generation.ErrRateLimited):
		return "The AI service is busy. Please try again in a moment."
	case errors.Is(err, generation.ErrAuth):
		return "The AI service rejected our credentials. Please contact support."
	case errors.Is(err, generation.ErrConnection),
		errors.Is(err, generation.ErrServiceUnavailable):
		return "The AI service is temporarily unavailable. Please try again."
	case errors.Is(err, generation.ErrParse),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return "Flashcard generation failed. Please try again."
	default:
		return "An unexpected error occurred."
	}
}
