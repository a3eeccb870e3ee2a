package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Flashcard validation thresholds. The answer minimum is looser in
// vocabulary-pair mode where single short words are legitimate answers.
const (
	MinQuestionLength         = 5
	MinAnswerLength           = 3
	MinVocabularyAnswerLength = 2
	MaxDistractors            = 3
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is empty or nil.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrQuestionTooShort is returned when the question side is missing or too short.
	ErrQuestionTooShort = errors.New("flashcard question is missing or too short")

	// ErrAnswerTooShort is returned when the answer side is missing or too short.
	ErrAnswerTooShort = errors.New("flashcard answer is missing or too short")

	// ErrTooManyDistractors is returned when a flashcard carries more than
	// MaxDistractors wrong-answer options.
	ErrTooManyDistractors = errors.New("flashcard has too many distractors")
)

// Flashcard is a single generated question/answer pair, optionally with
// multiple-choice distractors. Flashcards are immutable once created: a card
// that fails validation is dropped, never patched.
type Flashcard struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Distractors []string  `json:"distractors,omitempty"`
}

// NewFlashcard creates a Flashcard with a fresh UUID from raw model output.
// vocabularyMode relaxes the answer length minimum for single-word
// translations. Returns an error if validation fails.
func NewFlashcard(question, answer string, distractors []string, vocabularyMode bool) (*Flashcard, error) {
	card := &Flashcard{
		ID:          uuid.New(),
		Question:    question,
		Answer:      answer,
		Distractors: distractors,
	}

	if err := card.Validate(vocabularyMode); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks the flashcard against the length invariants.
func (c *Flashcard) Validate(vocabularyMode bool) error {
	if c.ID == uuid.Nil {
		return ErrFlashcardIDEmpty
	}

	if len([]rune(c.Question)) < MinQuestionLength {
		return ErrQuestionTooShort
	}

	minAnswer := MinAnswerLength
	if vocabularyMode {
		minAnswer = MinVocabularyAnswerLength
	}
	if len([]rune(c.Answer)) < minAnswer {
		return ErrAnswerTooShort
	}

	if len(c.Distractors) > MaxDistractors {
		return ErrTooManyDistractors
	}

	return nil
}
