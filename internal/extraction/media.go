package extraction

import (
	"context"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// RawExtractFunc is the contract for externally provided extraction engines
// (OCR, audio transcription). The core never links those engines directly;
// it consumes their text plus a confidence score in [0,1].
type RawExtractFunc func(ctx context.Context, data []byte) (text string, confidence float64, err error)

// lowConfidenceThreshold is the confidence below which a non-fatal warning
// is attached to the result.
const lowConfidenceThreshold = 0.6

// ImageExtractor wraps an external OCR engine.
type ImageExtractor struct {
	ocr RawExtractFunc
}

func NewImageExtractor(ocr RawExtractFunc) *ImageExtractor {
	return &ImageExtractor{ocr: ocr}
}

func (e *ImageExtractor) SourceType() domain.SourceType {
	return domain.SourceImage
}

func (e *ImageExtractor) Extract(ctx context.Context, input RawMaterial) (string, []string, error) {
	if e.ocr == nil {
		return "", nil, &domain.ExtractionError{Reason: "image recognition is not configured"}
	}

	text, confidence, err := e.ocr(ctx, input.Data)
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "could not read text from the image",
			Suggestion: "try a sharper photo with better lighting",
		}
	}

	var warnings []string
	if confidence < lowConfidenceThreshold {
		warnings = append(warnings, "low OCR confidence; some text may be misread")
	}

	return text, warnings, nil
}

// AudioExtractor wraps an external transcription engine.
type AudioExtractor struct {
	transcribe RawExtractFunc
}

func NewAudioExtractor(transcribe RawExtractFunc) *AudioExtractor {
	return &AudioExtractor{transcribe: transcribe}
}

func (e *AudioExtractor) SourceType() domain.SourceType {
	return domain.SourceAudio
}

func (e *AudioExtractor) Extract(ctx context.Context, input RawMaterial) (string, []string, error) {
	if e.transcribe == nil {
		return "", nil, &domain.ExtractionError{Reason: "audio transcription is not configured"}
	}

	text, confidence, err := e.transcribe(ctx, input.Data)
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "could not transcribe the audio",
			Suggestion: "make sure the recording contains clear speech",
		}
	}

	var warnings []string
	if confidence < lowConfidenceThreshold {
		warnings = append(warnings, "low transcription confidence; some words may be misheard")
	}

	return text, warnings, nil
}
