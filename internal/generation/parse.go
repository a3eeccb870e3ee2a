package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// rawCard is one card as the model emits it, before domain validation.
type rawCard struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Distractors []string `json:"distractors"`
}

// wrongTaskKeys appearing in the model output mean it answered a different
// task entirely (e.g. emitted a code edit). That batch is never accepted.
var wrongTaskKeys = []string{"code", "file_path", "diff", "patch"}

// parseCards turns raw model text into cards. truncated marks responses the
// provider cut off at the token limit; those go straight to bracket repair.
// Failures map onto the taxonomy: ErrEmptyResponse for no output,
// ErrGenerationFailed for wrong-task output, ErrParse for everything that
// could not be decoded even after repair.
func parseCards(raw string, truncated bool) ([]rawCard, error) {
	text := stripFences(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	if looksLikeWrongTask(text) {
		return nil, fmt.Errorf("%w: response resembles non-flashcard content", ErrGenerationFailed)
	}

	candidate, ok := locateJSON(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON value found", ErrParse)
	}

	if !truncated {
		if cards, err := decodeCards(candidate); err == nil {
			return cards, nil
		}
	}

	// Either the provider reported truncation or the first decode failed:
	// close unbalanced brackets and try once more.
	repaired, ok := repairBrackets(candidate)
	if !ok {
		return nil, fmt.Errorf("%w: output is not repairable", ErrParse)
	}

	cards, err := decodeCards(repaired)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return cards, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	start := 3
	if idx := strings.Index(text[start:], "\n"); idx != -1 {
		start += idx + 1
	}
	body := text[start:]
	if end := strings.LastIndex(body, "```"); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

// looksLikeWrongTask checks for structural markers of non-flashcard output.
func looksLikeWrongTask(text string) bool {
	if !gjson.Valid(text) {
		return false
	}
	parsed := gjson.Parse(text)
	probe := parsed
	if parsed.IsArray() {
		elements := parsed.Array()
		if len(elements) == 0 {
			return false
		}
		probe = elements[0]
	}
	if !probe.IsObject() {
		return false
	}
	for _, key := range wrongTaskKeys {
		if probe.Get(key).Exists() {
			return true
		}
	}
	return false
}

// locateJSON returns the span from the first opening bracket to the last
// closing bracket, which survives prose before and after the JSON value.
func locateJSON(text string) (string, bool) {
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return "", false
	}

	end := strings.LastIndexAny(text, "]}")
	if end > start {
		return text[start : end+1], true
	}
	// No closer at all; hand the open fragment to the repair pass.
	return text[start:], true
}

// decodeCards accepts either a bare array of cards or an object wrapping
// one under a conventional key.
func decodeCards(candidate string) ([]rawCard, error) {
	trimmed := strings.TrimSpace(candidate)

	if strings.HasPrefix(trimmed, "{") {
		for _, key := range []string{"cards", "flashcards", "questions"} {
			if arr := gjson.Get(trimmed, key); arr.IsArray() {
				trimmed = arr.Raw
				break
			}
		}
	}

	var cards []rawCard
	if err := json.Unmarshal([]byte(trimmed), &cards); err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("decoded zero cards")
	}
	return cards, nil
}

// repairBrackets recovers a truncated JSON value: it cuts the text back to
// the end of the last complete object and appends closers for every bracket
// still open at that point. String literals are skipped so brackets inside
// card text do not count.
func repairBrackets(candidate string) (string, bool) {
	cut := strings.LastIndex(candidate, "}")
	if cut == -1 {
		return "", false
	}
	candidate = candidate[:cut+1]

	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{' || c == '[':
			stack = append(stack, c)
		case c == '}' || c == ']':
			if len(stack) == 0 {
				return "", false
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				return "", false
			}
			stack = stack[:len(stack)-1]
		}
	}

	if inString {
		return "", false
	}

	var closers strings.Builder
	closers.WriteString(candidate)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			closers.WriteByte('}')
		} else {
			closers.WriteByte(']')
		}
	}
	return closers.String(), true
}
