package extraction

import (
	"regexp"
	"strings"
)

var (
	hyphenBreakRe = regexp.MustCompile(`(\p{L})-\n[ \t]*(\p{L})`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes extracted text: it joins words hyphenated across line
// wraps, collapses repeated whitespace, and limits blank-line runs to one
// blank line. The transformation is idempotent.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	// Trimming must come first so "exam- \nple" still joins into "example".
	// Consecutive breaks overlap on the joining letter, so a single
	// ReplaceAllString pass can leave a break behind; repeat until stable.
	for {
		joined := hyphenBreakRe.ReplaceAllString(text, "$1$2")
		if joined == text {
			break
		}
		text = joined
	}

	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
