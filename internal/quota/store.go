// Package quota enforces per-user daily generation limits and premium
// entitlements ahead of any model call.
package quota

import (
	"context"
	"errors"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// ErrNotFound is returned by a Store when no quota row exists for a user.
var ErrNotFound = errors.New("quota status not found")

// Store persists per-user quota state across requests. Implementations must
// treat Increment as insert-on-missing so that a user's first successful
// generation creates their row.
type Store interface {
	// Get returns the stored status for userID, or ErrNotFound.
	Get(ctx context.Context, userID string) (*domain.UserQuotaStatus, error)

	// Put writes the full status, inserting or overwriting.
	Put(ctx context.Context, status *domain.UserQuotaStatus) error

	// Increment adds one to the user's daily count, creating the row with
	// count 1 and lastReset = now when it does not exist.
	Increment(ctx context.Context, userID string, now time.Time) error
}
