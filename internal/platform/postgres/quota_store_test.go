package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuotaStore(t *testing.T) {
	t.Parallel()

	t.Run("panics on nil db", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			NewQuotaStore(nil, nil)
		})
	})
}
