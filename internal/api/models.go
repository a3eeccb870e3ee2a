// Package api implements the HTTP surface of the flashcard generation
// service.
package api

import (
	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/service"
)

// GenerateRequest is the JSON body of the generate endpoints.
type GenerateRequest struct {
	Text             string `json:"text"              validate:"required"`
	TargetCount      int    `json:"target_count"      validate:"required,min=1,max=90"`
	Difficulty       string `json:"difficulty"        validate:"required,oneof=Easy Medium Hard"`
	Subject          string `json:"subject,omitempty"`
	TargetGrade      string `json:"target_grade,omitempty"`
	OutputLanguage   string `json:"output_language,omitempty"`
	KnownLanguage    string `json:"known_language,omitempty"`
	LearningLanguage string `json:"learning_language,omitempty"`
}

// ToDomain converts the DTO into a domain request, defaulting the output
// language to automatic detection.
func (r GenerateRequest) ToDomain() domain.GenerationRequest {
	outputLanguage := r.OutputLanguage
	if outputLanguage == "" {
		outputLanguage = domain.OutputLanguageAuto
	}
	return domain.GenerationRequest{
		Text:             r.Text,
		TargetCount:      r.TargetCount,
		Difficulty:       domain.Difficulty(r.Difficulty),
		Subject:          r.Subject,
		TargetGrade:      r.TargetGrade,
		OutputLanguage:   outputLanguage,
		KnownLanguage:    r.KnownLanguage,
		LearningLanguage: r.LearningLanguage,
	}
}

// FlashcardResponse is one generated card.
type FlashcardResponse struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Distractors []string `json:"distractors,omitempty"`
}

// GenerateResponse is the success payload of the generate endpoints.
type GenerateResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
	Warnings   []string            `json:"warnings,omitempty"`
	Language   string              `json:"language"`
	InputType  string              `json:"input_type"`
	Subject    string              `json:"subject_type"`
	DailyCount int                 `json:"daily_count"`
	IsPremium  bool                `json:"is_premium"`
}

// NewGenerateResponse maps a pipeline result onto the wire format.
func NewGenerateResponse(result *service.GenerationResult) GenerateResponse {
	cards := make([]FlashcardResponse, len(result.Flashcards))
	for i, card := range result.Flashcards {
		cards[i] = FlashcardResponse{
			ID:          card.ID.String(),
			Question:    card.Question,
			Answer:      card.Answer,
			Distractors: card.Distractors,
		}
	}
	return GenerateResponse{
		Flashcards: cards,
		Warnings:   result.Warnings,
		Language:   result.Classification.Language,
		InputType:  string(result.Classification.InputType),
		Subject:    string(result.Classification.SubjectType),
		DailyCount: result.DailyCount,
		IsPremium:  result.IsPremium,
	}
}

// UsageResponse reports quota consumption.
type UsageResponse struct {
	DailyCount int  `json:"daily_count"`
	DailyLimit int  `json:"daily_limit,omitempty"`
	Remaining  *int `json:"remaining,omitempty"`
	IsPremium  bool `json:"is_premium"`
}
