// Package service wires the extraction, classification, quota, and
// generation components into the request-scoped pipeline.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/classify"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/extraction"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/logger"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/quota"
)

// CardGenerator produces flashcards for a validated request. It is
// implemented by generation.Orchestrator.
type CardGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest, cls domain.ClassificationContext) ([]*domain.Flashcard, error)
}

// QuotaGate guards generation behind per-user limits.
type QuotaGate interface {
	CheckAndReserve(ctx context.Context, userID string, isPremium bool, requestedCount int) (quota.Allowance, error)
	Commit(ctx context.Context, userID string) error
	Usage(ctx context.Context, userID string, isPremium bool) (quota.Allowance, error)
}

// GenerationResult is the pipeline's successful outcome.
type GenerationResult struct {
	Flashcards []*domain.Flashcard
	Warnings   []string

	// Classification echoes what the classifier decided, for response
	// metadata and debugging.
	Classification domain.ClassificationContext

	// DailyCount is the user's consumption before this generation.
	DailyCount int
	IsPremium  bool
}

// GenerationService runs the full pipeline: extract, classify, check
// quota, generate, commit quota.
type GenerationService struct {
	adapter    *extraction.Adapter
	classifier *classify.Classifier
	gate       QuotaGate
	generator  CardGenerator
	logger     *slog.Logger
}

// NewGenerationService assembles the pipeline from its components.
func NewGenerationService(
	adapter *extraction.Adapter,
	classifier *classify.Classifier,
	gate QuotaGate,
	generator CardGenerator,
	log *slog.Logger,
) (*GenerationService, error) {
	if adapter == nil {
		return nil, fmt.Errorf("extraction adapter cannot be nil")
	}
	if classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	if gate == nil {
		return nil, fmt.Errorf("quota gate cannot be nil")
	}
	if generator == nil {
		return nil, fmt.Errorf("card generator cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &GenerationService{
		adapter:    adapter,
		classifier: classifier,
		gate:       gate,
		generator:  generator,
		logger:     log.With(slog.String("component", "generation_service")),
	}, nil
}

// GenerateFromText runs the pipeline on already-extracted text. The quota
// check happens before any model call; the counter is committed only when
// at least one card came back.
func (s *GenerationService) GenerateFromText(
	ctx context.Context,
	userID string,
	isPremium bool,
	req domain.GenerationRequest,
) (*GenerationResult, error) {
	return s.generate(ctx, userID, isPremium, req, nil)
}

// GenerateFromMaterial extracts text from raw material first, then runs
// the same pipeline. Extraction warnings are forwarded in the result.
func (s *GenerationService) GenerateFromMaterial(
	ctx context.Context,
	userID string,
	isPremium bool,
	material extraction.RawMaterial,
	req domain.GenerationRequest,
) (*GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	extracted, err := s.adapter.Extract(ctx, material)
	if err != nil {
		log.Warn("extraction failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return nil, err
	}

	req.Text = extracted.Text
	return s.generate(ctx, userID, isPremium, req, extracted.Warnings)
}

// Usage reports current quota consumption for the usage endpoint.
func (s *GenerationService) Usage(ctx context.Context, userID string, isPremium bool) (quota.Allowance, error) {
	return s.gate.Usage(ctx, userID, isPremium)
}

func (s *GenerationService) generate(
	ctx context.Context,
	userID string,
	isPremium bool,
	req domain.GenerationRequest,
	warnings []string,
) (*GenerationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	cls := s.classifier.Classify(req.Text)

	allowance, err := s.gate.CheckAndReserve(ctx, userID, isPremium, req.TargetCount)
	if err != nil {
		return nil, err
	}
	if req.TargetCount > allowance.MaxCards {
		log.Info("target count clamped by quota tier",
			slog.String("user_id", userID),
			slog.Int("requested", req.TargetCount),
			slog.Int("allowed", allowance.MaxCards))
		req.TargetCount = allowance.MaxCards
	}

	cards, err := s.generator.Generate(ctx, req, cls)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Commit(ctx, userID); err != nil {
		// The cards exist; losing the increment is better than losing
		// the generation.
		log.Error("failed to commit quota after successful generation",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
	}

	log.Info("generation pipeline complete",
		slog.String("user_id", userID),
		slog.Int("card_count", len(cards)),
		slog.String("language", cls.Language),
		slog.String("subject_type", string(cls.SubjectType)))

	return &GenerationResult{
		Flashcards:     cards,
		Warnings:       warnings,
		Classification: cls,
		DailyCount:     allowance.DailyCount,
		IsPremium:      allowance.IsPremium,
	}, nil
}
