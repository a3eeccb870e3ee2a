package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/classify"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/extraction"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/generation"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/gemini"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/openai"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/postgres"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/prompt"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/quota"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/service"
)

// application holds the wired dependency graph for the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	db      *sql.DB
	service *service.GenerationService
}

// newApplication opens the database, applies migrations, and wires the
// generation pipeline from configuration.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := openDatabase(ctx, cfg.Database.URL, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		closeDatabase(db, log)
		return nil, err
	}

	client, err := newModelClient(ctx, cfg.LLM, log)
	if err != nil {
		closeDatabase(db, log)
		return nil, err
	}

	orchestrator := generation.NewOrchestrator(
		client,
		prompt.NewBuilder(),
		log,
		generation.CompletionParams{
			Temperature:     cfg.LLM.Temperature,
			MaxOutputTokens: cfg.LLM.MaxOutputTokens,
			ResponseFormat:  generation.ResponseFormatJSON,
		},
		time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second,
	)

	adapter := extraction.NewAdapter(log,
		extraction.NewTextExtractor(),
		extraction.NewPDFExtractor(),
		extraction.NewDOCXExtractor(),
		extraction.NewYouTubeExtractor(nil),
		// OCR and transcription engines are deployment-provided; without
		// one the extractor rejects its source type with a clear reason.
		extraction.NewImageExtractor(nil),
		extraction.NewAudioExtractor(nil),
	)

	gate := quota.NewGate(postgres.NewQuotaStore(db, log), cfg.Quota, log)

	svc, err := service.NewGenerationService(
		adapter,
		classify.New(cfg.Classify.FallbackLanguage),
		gate,
		orchestrator,
		log,
	)
	if err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to build generation service: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  log,
		db:      db,
		service: svc,
	}, nil
}

// newModelClient selects the LLM backend from configuration.
func newModelClient(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (generation.ModelClient, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewClient(ctx, cfg, log)
	case "openai":
		return openai.NewClient(cfg, log)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// Close releases held resources.
func (app *application) Close() {
	closeDatabase(app.db, app.logger)
}
