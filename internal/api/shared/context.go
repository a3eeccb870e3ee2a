// Package shared holds helpers used across API handlers and middleware.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ContextKey is the type for context values set by this package.
type ContextKey string

const (
	// IdentityContextKey carries the authenticated Identity.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey carries the per-request trace ID.
	TraceIDKey ContextKey = "traceID"

	traceIDBytes = 16
)

// Identity is the caller resolved by the auth middleware.
type Identity struct {
	UserID    string
	IsPremium bool
}

// WithIdentity stores the caller identity on the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, id)
}

// IdentityFrom retrieves the caller identity, reporting whether one was set.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityContextKey).(Identity)
	return id, ok
}

// SetTraceID attaches a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID, or "" when none was set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, traceIDBytes)
	if _, err := rand.Read(b); err != nil {
		// Never return a static ID; a time-derived value still correlates
		// logs within a request.
		return fmt.Sprintf("t-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
