package quota

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/config"
	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

var (
	// ErrDailyLimitReached is returned when a user has spent their daily
	// generation allowance.
	ErrDailyLimitReached = errors.New("daily generation limit reached")

	// ErrEmptyUserID is returned when a check is attempted without a user.
	ErrEmptyUserID = errors.New("user ID cannot be empty")
)

// Allowance is the outcome of a successful quota check.
type Allowance struct {
	// MaxCards is the per-request card ceiling after applying the free
	// tier's set-size cap. Premium users keep their requested count.
	MaxCards int

	// DailyCount is the user's consumed generations before this request.
	DailyCount int

	// DailyLimit is the ceiling DailyCount is measured against; zero for
	// premium users, who have none.
	DailyLimit int

	// IsPremium reflects the entitlement the check ran under.
	IsPremium bool
}

// anonWindow tracks one anonymous visitor's local counter.
type anonWindow struct {
	count     int
	lastReset time.Time
}

// Gate decides whether a generation request may proceed and records
// successful generations. Registered users are checked against the durable
// store with a lazy 24h counter reset; anonymous users are checked against
// a conservative in-process counter with no store round-trip.
type Gate struct {
	store  Store
	cfg    config.QuotaConfig
	logger *slog.Logger
	now    func() time.Time

	mu   sync.Mutex
	anon map[string]*anonWindow
}

// NewGate creates a Gate backed by the given store.
func NewGate(store Store, cfg config.QuotaConfig, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.Default()
	}
	return &Gate{
		store:  store,
		cfg:    cfg,
		logger: log.With(slog.String("component", "quota_gate")),
		now:    time.Now,
		anon:   make(map[string]*anonWindow),
	}
}

// CheckAndReserve evaluates whether the user may generate now. It performs
// the lazy daily reset before evaluation and returns the effective card
// ceiling for the request. It does NOT consume quota; call Commit after the
// generation succeeds.
func (g *Gate) CheckAndReserve(ctx context.Context, userID string, isPremium bool, requestedCount int) (Allowance, error) {
	if userID == "" {
		return Allowance{}, ErrEmptyUserID
	}

	if domain.IsAnonymousUser(userID) {
		return g.checkAnonymous(userID, requestedCount)
	}

	now := g.now()
	status, err := g.store.Get(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
		status = &domain.UserQuotaStatus{UserID: userID, IsPremium: isPremium, LastReset: now}
	case err != nil:
		return Allowance{}, fmt.Errorf("failed to load quota status: %w", err)
	}

	if status.ResetDue(now) {
		status.DailyGenerationCount = 0
		status.LastReset = now
		if err := g.store.Put(ctx, status); err != nil {
			return Allowance{}, fmt.Errorf("failed to persist quota reset: %w", err)
		}
		g.logger.DebugContext(ctx, "daily quota reset", slog.String("user_id", userID))
	}

	if isPremium || status.IsPremium {
		return Allowance{MaxCards: requestedCount, DailyCount: status.DailyGenerationCount, IsPremium: true}, nil
	}

	if status.DailyGenerationCount >= g.cfg.FreeDailyLimit {
		return Allowance{}, fmt.Errorf("%w: %d of %d used", ErrDailyLimitReached,
			status.DailyGenerationCount, g.cfg.FreeDailyLimit)
	}

	maxCards := requestedCount
	if maxCards > g.cfg.FreeMaxCardsPerSet {
		maxCards = g.cfg.FreeMaxCardsPerSet
	}
	return Allowance{MaxCards: maxCards, DailyCount: status.DailyGenerationCount}, nil
}

// Commit consumes one generation from the user's allowance. Call it only
// after the generation produced cards; failed generations must not spend
// quota.
func (g *Gate) Commit(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if domain.IsAnonymousUser(userID) {
		g.mu.Lock()
		defer g.mu.Unlock()
		w := g.anonEntry(userID)
		w.count++
		return nil
	}

	if err := g.store.Increment(ctx, userID, g.now()); err != nil {
		return fmt.Errorf("failed to record generation: %w", err)
	}
	return nil
}

// Usage reports the user's current consumption for the usage endpoint.
func (g *Gate) Usage(ctx context.Context, userID string, isPremium bool) (Allowance, error) {
	if userID == "" {
		return Allowance{}, ErrEmptyUserID
	}

	if domain.IsAnonymousUser(userID) {
		g.mu.Lock()
		defer g.mu.Unlock()
		w := g.anonEntry(userID)
		return Allowance{
			MaxCards:   g.cfg.FreeMaxCardsPerSet,
			DailyCount: w.count,
			DailyLimit: g.cfg.AnonymousDailyLimit,
		}, nil
	}

	now := g.now()
	status, err := g.store.Get(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
		status = &domain.UserQuotaStatus{UserID: userID, LastReset: now}
	case err != nil:
		return Allowance{}, fmt.Errorf("failed to load quota status: %w", err)
	}

	count := status.DailyGenerationCount
	if status.ResetDue(now) {
		count = 0
	}
	premium := isPremium || status.IsPremium
	limit := g.cfg.FreeDailyLimit
	if premium {
		limit = 0
	}
	return Allowance{
		MaxCards:   g.cfg.FreeMaxCardsPerSet,
		DailyCount: count,
		DailyLimit: limit,
		IsPremium:  premium,
	}, nil
}

// checkAnonymous applies the local fixed limit for "anon-" users.
func (g *Gate) checkAnonymous(userID string, requestedCount int) (Allowance, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.anonEntry(userID)
	if w.count >= g.cfg.AnonymousDailyLimit {
		return Allowance{}, fmt.Errorf("%w: anonymous limit of %d used",
			ErrDailyLimitReached, g.cfg.AnonymousDailyLimit)
	}

	maxCards := requestedCount
	if maxCards > g.cfg.FreeMaxCardsPerSet {
		maxCards = g.cfg.FreeMaxCardsPerSet
	}
	return Allowance{MaxCards: maxCards, DailyCount: w.count}, nil
}

// anonEntry returns the caller's window, creating or resetting it as
// needed. Callers must hold g.mu.
func (g *Gate) anonEntry(userID string) *anonWindow {
	now := g.now()
	w, ok := g.anon[userID]
	if !ok {
		w = &anonWindow{lastReset: now}
		g.anon[userID] = w
		return w
	}
	if now.Sub(w.lastReset) >= domain.QuotaResetInterval {
		w.count = 0
		w.lastReset = now
	}
	return w
}
