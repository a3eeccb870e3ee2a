package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/logger"
)

// Quality gate thresholds applied uniformly regardless of source. A token
// longer than maxTokenLength signals OCR corruption.
const (
	minTextLength  = 20
	minWordCount   = 5
	minAlnumRatio  = 0.3
	maxTokenLength = 50
)

// ErrUnsupportedSource is returned when no extractor is registered for the
// material's source type.
var ErrUnsupportedSource = errors.New("unsupported source type")

// RawMaterial is one piece of study material handed to the adapter. Either
// Data or URL is set depending on the source type.
type RawMaterial struct {
	SourceType domain.SourceType // empty means detect from Filename
	Filename   string
	Data       []byte
	URL        string
}

// Extractor is a format-specific extraction plugin. It returns raw text plus
// non-fatal warnings; the adapter owns cleanup and the quality gate.
type Extractor interface {
	SourceType() domain.SourceType
	Extract(ctx context.Context, input RawMaterial) (string, []string, error)
}

// Adapter dispatches raw material to the registered extractor for its format
// and validates the result.
type Adapter struct {
	logger     *slog.Logger
	extractors map[domain.SourceType]Extractor
}

// NewAdapter creates an Adapter with the given extractor plugins.
// If logger is nil, the default logger is used.
func NewAdapter(log *slog.Logger, extractors ...Extractor) *Adapter {
	if log == nil {
		log = slog.Default()
	}

	byType := make(map[domain.SourceType]Extractor, len(extractors))
	for _, e := range extractors {
		byType[e.SourceType()] = e
	}

	return &Adapter{
		logger:     log.With(slog.String("component", "extraction_adapter")),
		extractors: byType,
	}
}

// Extract runs the matching extractor, cleans its output, and applies the
// quality gate. On rejection it returns a *domain.ExtractionError and never
// substitutes a fallback string.
func (a *Adapter) Extract(ctx context.Context, input RawMaterial) (*domain.ExtractionResult, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = detectSourceType(input.Filename)
	}

	extractor, ok := a.extractors[sourceType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, sourceType)
	}

	text, warnings, err := extractor.Extract(ctx, input)
	if err != nil {
		log.Warn("extractor failed",
			slog.String("source_type", string(sourceType)),
			slog.String("error", err.Error()))
		return nil, err
	}

	text = Clean(text)

	if rejectErr := validateQuality(text, sourceType); rejectErr != nil {
		log.Warn("extracted text rejected by quality gate",
			slog.String("source_type", string(sourceType)),
			slog.Int("text_length", len(text)),
			slog.String("reason", rejectErr.Reason))
		return nil, rejectErr
	}

	log.Debug("extraction succeeded",
		slog.String("source_type", string(sourceType)),
		slog.Int("text_length", len(text)),
		slog.Int("warning_count", len(warnings)))

	return &domain.ExtractionResult{
		Text:       text,
		SourceType: sourceType,
		Warnings:   warnings,
	}, nil
}

// detectSourceType maps a filename extension to a source type, defaulting to
// plain text.
func detectSourceType(filename string) domain.SourceType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return domain.SourcePDF
	case ".docx":
		return domain.SourceDOCX
	case ".png", ".jpg", ".jpeg", ".webp":
		return domain.SourceImage
	case ".mp3", ".m4a", ".wav", ".ogg":
		return domain.SourceAudio
	default:
		return domain.SourceText
	}
}

// validateQuality applies the uniform rejection policy to cleaned text.
func validateQuality(text string, sourceType domain.SourceType) *domain.ExtractionError {
	suggestion := ""
	if sourceType == domain.SourcePDF || sourceType == domain.SourceDOCX {
		suggestion = "try converting the document to images and uploading those"
	}

	if text == "" {
		return &domain.ExtractionError{
			Reason:     "no text could be extracted",
			Suggestion: suggestion,
		}
	}

	if len([]rune(text)) < minTextLength {
		return &domain.ExtractionError{
			Reason:     "extracted text is too short to generate flashcards",
			Suggestion: suggestion,
		}
	}

	words := strings.Fields(text)
	if len(words) < minWordCount {
		return &domain.ExtractionError{
			Reason:     "extracted text has too few words",
			Suggestion: suggestion,
		}
	}

	for _, word := range words {
		if len([]rune(word)) > maxTokenLength {
			return &domain.ExtractionError{
				Reason:     "extracted text contains corrupted tokens",
				Suggestion: suggestion,
			}
		}
	}

	if alnumRatio(text) < minAlnumRatio {
		return &domain.ExtractionError{
			Reason:     "extracted text does not look like readable content",
			Suggestion: suggestion,
		}
	}

	return nil
}

// alnumRatio returns the share of letters and digits among non-whitespace
// runes.
func alnumRatio(text string) float64 {
	total := 0
	alnum := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alnum) / float64(total)
}
