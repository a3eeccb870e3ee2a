package extraction

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// TextExtractor handles plain text input. It strips invalid UTF-8 and
// control characters but otherwise passes the material through.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) SourceType() domain.SourceType {
	return domain.SourceText
}

func (e *TextExtractor) Extract(_ context.Context, input RawMaterial) (string, []string, error) {
	text := string(input.Data)

	var warnings []string
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
		warnings = append(warnings, "input contained invalid UTF-8 sequences")
	}

	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)

	return text, warnings, nil
}
