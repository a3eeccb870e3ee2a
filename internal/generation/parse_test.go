package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()

	t.Run("bare array", func(t *testing.T) {
		t.Parallel()
		cards, err := parseCards(`[{"question":"What is ATP?","answer":"Cell energy currency","distractors":["DNA"]}]`, false)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "What is ATP?", cards[0].Question)
		assert.Equal(t, []string{"DNA"}, cards[0].Distractors)
	})

	t.Run("markdown fences are stripped", func(t *testing.T) {
		t.Parallel()
		raw := "```json\n[{\"question\":\"What is ATP?\",\"answer\":\"Cell energy currency\"}]\n```"
		cards, err := parseCards(raw, false)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("prose around the array is ignored", func(t *testing.T) {
		t.Parallel()
		raw := `Here are your flashcards: [{"question":"What is ATP?","answer":"Cell energy currency"}] Hope this helps!`
		cards, err := parseCards(raw, false)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("object wrapping a cards array", func(t *testing.T) {
		t.Parallel()
		raw := `{"cards":[{"question":"What is ATP?","answer":"Cell energy currency"}]}`
		cards, err := parseCards(raw, false)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("truncated array is repaired", func(t *testing.T) {
		t.Parallel()
		raw := `[{"question":"What is ATP?","answer":"Cell energy currency"},{"question":"What is DN`
		cards, err := parseCards(raw, true)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "What is ATP?", cards[0].Question)
	})

	t.Run("unreported truncation still repairs", func(t *testing.T) {
		t.Parallel()
		raw := `[{"question":"What is ATP?","answer":"Cell energy currency"},{"question":"incomplete"`
		cards, err := parseCards(raw, false)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("wrong task output raises generation failed", func(t *testing.T) {
		t.Parallel()
		raw := `{"code": "func main() {}", "file_path": "main.go"}`
		_, err := parseCards(raw, false)
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("wrong task inside an array", func(t *testing.T) {
		t.Parallel()
		raw := `[{"file_path": "main.go", "code": "package main"}]`
		_, err := parseCards(raw, false)
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})

	t.Run("empty response", func(t *testing.T) {
		t.Parallel()
		_, err := parseCards("   \n", false)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("empty fenced block", func(t *testing.T) {
		t.Parallel()
		_, err := parseCards("```json\n```", false)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("no JSON at all", func(t *testing.T) {
		t.Parallel()
		_, err := parseCards("I could not generate flashcards for this material.", false)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("unrepairable garbage", func(t *testing.T) {
		t.Parallel()
		_, err := parseCards(`[{{{"question"`, false)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("empty array", func(t *testing.T) {
		t.Parallel()
		_, err := parseCards(`[]`, false)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("brackets inside card text do not confuse repair", func(t *testing.T) {
		t.Parallel()
		raw := `[{"question":"What does f(x) = [x] mean?","answer":"The floor of x {rounded down}"},{"question":"trunc`
		cards, err := parseCards(raw, true)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Contains(t, cards[0].Answer, "rounded down")
	})
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `[1]`, stripFences("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("```\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFences("[1]"))
	assert.Equal(t, "", stripFences("   "))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want Kind
	}{
		{ErrTimeout, KindTimeout},
		{ErrRateLimited, KindRateLimited},
		{ErrConnection, KindConnectionError},
		{ErrAuth, KindAuthError},
		{ErrServiceUnavailable, KindServiceUnavailable},
		{ErrParse, KindParseError},
		{ErrEmptyResponse, KindEmptyResponse},
		{ErrGenerationFailed, KindGenerationFailed},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, KindOf(tc.err))
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(ErrTimeout))
	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(ErrConnection))
	assert.True(t, IsRetryable(ErrServiceUnavailable))

	// Configuration and output failures are not caller-retryable.
	assert.False(t, IsRetryable(ErrAuth))
	assert.False(t, IsRetryable(ErrParse))
	assert.False(t, IsRetryable(ErrEmptyResponse))
	assert.False(t, IsRetryable(ErrGenerationFailed))
}
