package domain

// InputType describes the shape of the study material.
type InputType string

const (
	// InputTypeObjectives marks material that is a list of learning goals.
	InputTypeObjectives InputType = "objectives"

	// InputTypeNotes marks free-form factual notes.
	InputTypeNotes InputType = "notes"
)

// SubjectType is the detected subject domain of the material.
type SubjectType string

const (
	SubjectMath             SubjectType = "math"
	SubjectLanguageLearning SubjectType = "language_learning"
	SubjectGeneral          SubjectType = "general"
)

// ClassificationContext is derived deterministically from extracted text and
// feeds prompt construction. It carries no side effects and is recomputed per
// request.
type ClassificationContext struct {
	Language    string
	InputType   InputType
	SubjectType SubjectType
	WordCount   int
}
