package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, Identity{UserID: "user-1", IsPremium: true})
	id, ok := IdentityFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id.UserID)
	assert.True(t, id.IsPremium)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	first := GetTraceID(ctx)
	assert.Len(t, first, 32)

	second := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, first, second)
}
