// Package postgres provides PostgreSQL-backed storage implementations.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/platform/logger"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/quota"
)

// DBTX abstracts over *sql.DB and *sql.Tx so stores can run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QuotaStore implements quota.Store against the user_quotas table.
type QuotaStore struct {
	db     DBTX
	logger *slog.Logger
}

var _ quota.Store = (*QuotaStore)(nil)

// NewQuotaStore creates a PostgreSQL quota store. The database handle is
// initialized and managed by the caller.
func NewQuotaStore(db DBTX, log *slog.Logger) *QuotaStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &QuotaStore{
		db:     db,
		logger: log.With(slog.String("component", "quota_store")),
	}
}

// Get returns the stored quota status, or quota.ErrNotFound when the user
// has never generated.
func (s *QuotaStore) Get(ctx context.Context, userID string) (*domain.UserQuotaStatus, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, is_premium, daily_generation_count, last_reset_at
		FROM user_quotas
		WHERE user_id = $1
	`
	var status domain.UserQuotaStatus
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&status.UserID,
		&status.IsPremium,
		&status.DailyGenerationCount,
		&status.LastReset,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, quota.ErrNotFound
		}
		log.Error("failed to load quota status",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load quota status: %w", err)
	}
	return &status, nil
}

// Put upserts the full quota row.
func (s *QuotaStore) Put(ctx context.Context, status *domain.UserQuotaStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_quotas (user_id, is_premium, daily_generation_count, last_reset_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			is_premium = EXCLUDED.is_premium,
			daily_generation_count = EXCLUDED.daily_generation_count,
			last_reset_at = EXCLUDED.last_reset_at
	`
	_, err := s.db.ExecContext(ctx, query,
		status.UserID,
		status.IsPremium,
		status.DailyGenerationCount,
		status.LastReset,
	)
	if err != nil {
		log.Error("failed to save quota status",
			slog.String("error", err.Error()),
			slog.String("user_id", status.UserID))
		return fmt.Errorf("failed to save quota status: %w", err)
	}
	return nil
}

// Increment adds one generation to the user's daily count, creating the
// row on first use.
func (s *QuotaStore) Increment(ctx context.Context, userID string, now time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_quotas (user_id, is_premium, daily_generation_count, last_reset_at)
		VALUES ($1, FALSE, 1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			daily_generation_count = user_quotas.daily_generation_count + 1
	`
	_, err := s.db.ExecContext(ctx, query, userID, now)
	if err != nil {
		log.Error("failed to increment quota",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return fmt.Errorf("failed to increment quota: %w", err)
	}

	log.Debug("quota incremented", slog.String("user_id", userID))
	return nil
}
