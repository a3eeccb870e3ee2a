package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// PDFExtractor pulls the embedded text layer out of a PDF document.
// Scanned PDFs without a text layer come back near-empty; the extractor
// flags that case with a warning so the caller can suggest OCR instead.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) SourceType() domain.SourceType {
	return domain.SourcePDF
}

func (e *PDFExtractor) Extract(_ context.Context, input RawMaterial) (string, []string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(input.Data), int64(len(input.Data)))
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "could not open PDF document",
			Suggestion: "make sure the file is a valid, unencrypted PDF",
		}
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "could not read text from PDF",
			Suggestion: "try converting the document to images and uploading those",
		}
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", nil, fmt.Errorf("failed to read PDF text stream: %w", err)
	}
	text := buf.String()

	var warnings []string
	// A multi-page PDF with almost no text is usually a scan.
	if reader.NumPage() > 0 && len(strings.TrimSpace(text)) < reader.NumPage()*20 {
		warnings = append(warnings, "document may be scanned; very little embedded text found")
	}

	return text, warnings, nil
}
