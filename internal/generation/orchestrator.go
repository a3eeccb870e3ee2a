package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/logger"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/prompt"
)

const (
	// fastModeThreshold is the target count below which a single model
	// invocation is made with no retry.
	fastModeThreshold = 25

	// guaranteedAttemptsLargeCutoff raises the attempt ceiling for big sets.
	guaranteedAttemptsLargeCutoff = 30
	guaranteedAttemptsSmall       = 3
	guaranteedAttemptsLarge       = 5
)

// expansionHint is appended to the material when an iteration yields fewer
// than half the cards it asked for, nudging the model to mine the text more
// thoroughly on the next pass.
const expansionHint = "\n\nExpand comprehensively: cover every section, definition, fact, " +
	"and example in the material, including minor details."

// Orchestrator drives model calls and turns their output into validated
// flashcards.
type Orchestrator struct {
	client      ModelClient
	builder     *prompt.Builder
	logger      *slog.Logger
	params      CompletionParams
	callTimeout time.Duration
}

// NewOrchestrator creates an Orchestrator. callTimeout bounds each
// individual model invocation, independent of the caller's deadline.
func NewOrchestrator(
	client ModelClient,
	builder *prompt.Builder,
	log *slog.Logger,
	params CompletionParams,
	callTimeout time.Duration,
) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		client:      client,
		builder:     builder,
		logger:      log.With(slog.String("component", "orchestrator")),
		params:      params,
		callTimeout: callTimeout,
	}
}

// Generate produces up to req.TargetCount flashcards. Small requests run in
// fast mode (one invocation, no retry); requests of 25 cards or more run the
// guaranteed-count loop, which may return fewer cards than requested but
// never fails once any card has been accumulated.
func (o *Orchestrator) Generate(
	ctx context.Context,
	req domain.GenerationRequest,
	cls domain.ClassificationContext,
) ([]*domain.Flashcard, error) {
	if req.TargetCount < fastModeThreshold {
		return o.generateFast(ctx, req, cls)
	}
	return o.generateGuaranteed(ctx, req, cls)
}

func (o *Orchestrator) generateFast(
	ctx context.Context,
	req domain.GenerationRequest,
	cls domain.ClassificationContext,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, o.logger)

	p := o.builder.Build(req, cls)
	cards, err := o.invoke(ctx, p)
	if err != nil {
		return nil, err
	}

	if len(cards) > req.TargetCount {
		cards = cards[:req.TargetCount]
	}

	log.Info("fast mode generation complete",
		slog.Int("target_count", req.TargetCount),
		slog.Int("returned", len(cards)))
	return cards, nil
}

func (o *Orchestrator) generateGuaranteed(
	ctx context.Context,
	req domain.GenerationRequest,
	cls domain.ClassificationContext,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, o.logger)

	maxAttempts := guaranteedAttemptsSmall
	if req.TargetCount > guaranteedAttemptsLargeCutoff {
		maxAttempts = guaranteedAttemptsLarge
	}

	accumulated := make([]*domain.Flashcard, 0, req.TargetCount)
	seen := make(map[string]bool, req.TargetCount)
	text := req.Text
	hintAdded := false

	for attempt := 1; attempt <= maxAttempts && len(accumulated) < req.TargetCount; attempt++ {
		remaining := req.TargetCount - len(accumulated)

		iterReq := req
		iterReq.Text = text
		iterReq.TargetCount = remaining
		p := o.builder.Build(iterReq, cls)

		log.Info("guaranteed mode attempt",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", maxAttempts),
			slog.Int("remaining", remaining))

		cards, err := o.invoke(ctx, p)
		if err != nil {
			// Unusable output costs an attempt but never the whole loop.
			if isOutputError(err) {
				log.Warn("attempt produced unusable output",
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()))
				continue
			}
			// Transport failures: keep what we have, fail only when we
			// have nothing at all.
			if len(accumulated) > 0 {
				log.Warn("transport failure mid-loop, returning partial result",
					slog.Int("attempt", attempt),
					slog.Int("accumulated", len(accumulated)),
					slog.String("error", err.Error()))
				return accumulated, nil
			}
			return nil, err
		}

		added := 0
		for _, card := range cards {
			if len(accumulated) >= req.TargetCount {
				break
			}
			key := strings.ToLower(strings.TrimSpace(card.Question))
			if seen[key] {
				continue
			}
			seen[key] = true
			accumulated = append(accumulated, card)
			added++
		}

		log.Info("guaranteed mode attempt complete",
			slog.Int("attempt", attempt),
			slog.Int("added", added),
			slog.Int("accumulated", len(accumulated)))

		// A weak yield (under half the delta) earns the expansion hint.
		if added*2 < remaining && !hintAdded {
			text += expansionHint
			hintAdded = true
		}
	}

	if len(accumulated) == 0 {
		return nil, fmt.Errorf("%w: no cards after %d attempts", ErrGenerationFailed, maxAttempts)
	}

	if len(accumulated) < req.TargetCount {
		// Under-delivery is a reported condition, not a failure.
		log.Warn("guaranteed mode under-delivered",
			slog.Int("target_count", req.TargetCount),
			slog.Int("returned", len(accumulated)))
	}

	return accumulated, nil
}

// invoke runs one model call under the per-call timeout and converts its
// output into validated flashcards.
func (o *Orchestrator) invoke(ctx context.Context, p prompt.Prompt) ([]*domain.Flashcard, error) {
	callCtx := ctx
	if o.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.callTimeout)
		defer cancel()
	}

	resp, err := o.client.Complete(callCtx, p.Text, o.params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}

	truncated := resp.FinishReason == FinishReasonLength
	raws, err := parseCards(resp.Text, truncated)
	if err != nil {
		return nil, err
	}

	cards := make([]*domain.Flashcard, 0, len(raws))
	for _, raw := range raws {
		question := strings.TrimSpace(raw.Question)
		answer := strings.TrimSpace(raw.Answer)

		var distractors []string
		if !p.NoDistractors {
			for _, d := range raw.Distractors {
				if d = strings.TrimSpace(d); d != "" && len(distractors) < domain.MaxDistractors {
					distractors = append(distractors, d)
				}
			}
		}

		card, err := domain.NewFlashcard(question, answer, distractors, p.VocabularyMode)
		if err != nil {
			// A failed card is dropped, not patched.
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards survived validation", ErrGenerationFailed)
	}
	return cards, nil
}
