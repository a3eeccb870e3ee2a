package domain

import (
	"strings"
	"time"
)

// AnonymousIDPrefix marks user IDs that belong to unauthenticated sessions.
// Anonymous users are evaluated against a fixed local limit without a store
// round-trip.
const AnonymousIDPrefix = "anon-"

// QuotaResetInterval is how long a daily counter lives before a lazy reset.
const QuotaResetInterval = 24 * time.Hour

// UserQuotaStatus is the one piece of state with cross-request lifetime.
// It is owned by the quota gate and incremented only after a successful
// generation.
type UserQuotaStatus struct {
	UserID               string
	IsPremium            bool
	DailyGenerationCount int
	LastReset            time.Time
}

// ResetDue reports whether the 24h window has elapsed relative to now.
func (s *UserQuotaStatus) ResetDue(now time.Time) bool {
	return now.Sub(s.LastReset) >= QuotaResetInterval
}

// IsAnonymousUser reports whether the ID carries the reserved anonymous prefix.
func IsAnonymousUser(userID string) bool {
	return strings.HasPrefix(userID, AnonymousIDPrefix)
}
