package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewFlashcard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	card, err := NewFlashcard("What is the capital of France?", "Paris", []string{"Lyon", "Nice"}, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if card.Question != "What is the capital of France?" {
		t.Errorf("Unexpected question %q", card.Question)
	}

	if len(card.Distractors) != 2 {
		t.Errorf("Expected 2 distractors, got %d", len(card.Distractors))
	}

	// Question under the minimum length
	_, err = NewFlashcard("Hi?", "Paris", nil, false)
	if err != ErrQuestionTooShort {
		t.Errorf("Expected error %v, got %v", ErrQuestionTooShort, err)
	}

	// Answer under the general minimum
	_, err = NewFlashcard("What is the capital of France?", "Pa", nil, false)
	if err != ErrAnswerTooShort {
		t.Errorf("Expected error %v, got %v", ErrAnswerTooShort, err)
	}

	// The same answer passes in vocabulary mode
	_, err = NewFlashcard("What is the capital of France?", "Pa", nil, true)
	if err != nil {
		t.Errorf("Expected no error in vocabulary mode, got %v", err)
	}

	// Too many distractors
	_, err = NewFlashcard("What is the capital of France?", "Paris",
		[]string{"a", "b", "c", "d"}, false)
	if err != ErrTooManyDistractors {
		t.Errorf("Expected error %v, got %v", ErrTooManyDistractors, err)
	}
}

func TestFlashcardValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	validCard := Flashcard{
		ID:       uuid.New(),
		Question: "Define osmosis",
		Answer:   "Diffusion of water across a membrane",
	}

	if err := validCard.Validate(false); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidCard := validCard
	invalidCard.ID = uuid.Nil
	if err := invalidCard.Validate(false); err != ErrFlashcardIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrFlashcardIDEmpty, err)
	}

	invalidCard = validCard
	invalidCard.Answer = ""
	if err := invalidCard.Validate(false); err != ErrAnswerTooShort {
		t.Errorf("Expected error %v, got %v", ErrAnswerTooShort, err)
	}
}

func TestGenerationRequestValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := GenerationRequest{
		Text:           "Photosynthesis converts light energy into chemical energy in plants.",
		TargetCount:    10,
		Difficulty:     DifficultyMedium,
		OutputLanguage: OutputLanguageAuto,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Text under 20 characters must be rejected before any model call.
	short := valid
	short.Text = "too short"
	if err := short.Validate(); err != ErrTextTooShort {
		t.Errorf("Expected error %v, got %v", ErrTextTooShort, err)
	}

	outOfRange := valid
	outOfRange.TargetCount = 0
	if err := outOfRange.Validate(); err != ErrTargetCountOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrTargetCountOutOfRange, err)
	}

	outOfRange.TargetCount = 91
	if err := outOfRange.Validate(); err != ErrTargetCountOutOfRange {
		t.Errorf("Expected error %v, got %v", ErrTargetCountOutOfRange, err)
	}

	badDifficulty := valid
	badDifficulty.Difficulty = "Extreme"
	if err := badDifficulty.Validate(); err != ErrInvalidDifficulty {
		t.Errorf("Expected error %v, got %v", ErrInvalidDifficulty, err)
	}

	halfPair := valid
	halfPair.KnownLanguage = "English"
	if err := halfPair.Validate(); err != ErrIncompleteLanguagePair {
		t.Errorf("Expected error %v, got %v", ErrIncompleteLanguagePair, err)
	}

	fullPair := valid
	fullPair.KnownLanguage = "English"
	fullPair.LearningLanguage = "Spanish"
	if err := fullPair.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if !fullPair.VocabularyMode() {
		t.Error("Expected vocabulary mode for a full language pair")
	}
}

func TestUserQuotaStatusResetDue(t *testing.T) {
	t.Parallel() // Enable parallel execution

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	status := UserQuotaStatus{UserID: "u1", LastReset: now.Add(-25 * time.Hour)}
	if !status.ResetDue(now) {
		t.Error("Expected reset due after 25h")
	}

	status.LastReset = now.Add(-23 * time.Hour)
	if status.ResetDue(now) {
		t.Error("Did not expect reset due after 23h")
	}
}

func TestIsAnonymousUser(t *testing.T) {
	t.Parallel() // Enable parallel execution

	if !IsAnonymousUser("anon-42") {
		t.Error("Expected anon- prefix to be anonymous")
	}
	if IsAnonymousUser("user-42") {
		t.Error("Did not expect user- prefix to be anonymous")
	}
}
