package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses repeated blank lines",
			input: "first paragraph\n\n\n\n\nsecond paragraph",
			want:  "first paragraph\n\nsecond paragraph",
		},
		{
			name:  "joins hyphenated line breaks",
			input: "the photosyn-\nthesis process",
			want:  "the photosynthesis process",
		},
		{
			name:  "joins consecutive single-letter hyphen breaks",
			input: "a-\nb-\nc plus enough extra words here",
			want:  "abc plus enough extra words here",
		},
		{
			name:  "normalizes runs of spaces and tabs",
			input: "too   many\t\tspaces here",
			want:  "too many spaces here",
		},
		{
			name:  "normalizes carriage returns",
			input: "line one\r\nline two\rline three",
			want:  "line one\nline two\nline three",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  \n padded text \n\n ",
			want:  "padded text",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Clean(tc.input))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"first paragraph\n\n\n\nsecond para-\ngraph with   extra  spaces",
		"plain single line",
		"",
		"tabs\tand\r\nmixed\r endings\n\n\n",
		"hyphen- \nbreak with trailing space",
		"a-\nb-\nc plus enough extra words here",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		assert.Equal(t, once, twice, "Clean must be idempotent for %q", input)
	}
}
