package domain

import "fmt"

// SourceType identifies the origin format of ingested study material.
type SourceType string

const (
	SourceText    SourceType = "text"
	SourcePDF     SourceType = "pdf"
	SourceDOCX    SourceType = "docx"
	SourceYouTube SourceType = "youtube"
	SourceImage   SourceType = "image"
	SourceAudio   SourceType = "audio"
)

// ExtractionResult is the normalized output of a format-specific extractor.
// It is produced once per ingestion request, immutable, and discarded after
// generation completes.
type ExtractionResult struct {
	Text       string
	SourceType SourceType
	Warnings   []string
}

// ExtractionError is a rejection of unusable extracted text. It carries a
// human-readable reason and, where applicable, a remediation suggestion.
// The adapter never substitutes a fallback string for rejected input.
type ExtractionError struct {
	Reason     string
	Suggestion string
}

func (e *ExtractionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("extraction failed: %s (%s)", e.Reason, e.Suggestion)
	}
	return "extraction failed: " + e.Reason
}
