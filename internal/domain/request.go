package domain

import "errors"

// Difficulty controls how demanding the generated cards should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// GenerationRequest bounds.
const (
	MinTextLength  = 20
	MaxTargetCount = 90
)

// OutputLanguageAuto lets the classifier's detected language drive the
// output language directive.
const OutputLanguageAuto = "auto"

// GenerationRequest validation errors
var (
	// ErrTextTooShort is returned when the source text is under the minimum length.
	ErrTextTooShort = errors.New("text must be at least 20 characters")

	// ErrTargetCountOutOfRange is returned when the requested card count is
	// outside 1..90.
	ErrTargetCountOutOfRange = errors.New("target count must be between 1 and 90")

	// ErrInvalidDifficulty is returned when the difficulty is not one of
	// Easy, Medium, Hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrIncompleteLanguagePair is returned when only one of the vocabulary
	// pair languages is set.
	ErrIncompleteLanguagePair = errors.New("known and learning language must be set together")
)

// GenerationRequest is the caller-supplied description of one generation run.
type GenerationRequest struct {
	Text             string
	TargetCount      int
	Difficulty       Difficulty
	Subject          string
	TargetGrade      string
	OutputLanguage   string
	KnownLanguage    string
	LearningLanguage string
}

// VocabularyMode reports whether the request asks for paired-language
// vocabulary cards (questions in the known language, answers in the
// learning language).
func (r *GenerationRequest) VocabularyMode() bool {
	return r.KnownLanguage != "" && r.LearningLanguage != ""
}

// Validate checks the request bounds before any model call is made.
func (r *GenerationRequest) Validate() error {
	if len([]rune(r.Text)) < MinTextLength {
		return ErrTextTooShort
	}

	if r.TargetCount < 1 || r.TargetCount > MaxTargetCount {
		return ErrTargetCountOutOfRange
	}

	switch r.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrInvalidDifficulty
	}

	if (r.KnownLanguage == "") != (r.LearningLanguage == "") {
		return ErrIncompleteLanguagePair
	}

	return nil
}
