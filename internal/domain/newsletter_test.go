package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	now := time.Date(2025, 4, 3, 10, 0, 0, 0, time.FixedZone("TRT", 3*60*60))

	t.Run("accepts a well-formed address", func(t *testing.T) {
		sub, err := NewSubscription("a@b.com", now)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", sub.Email)
		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, time.UTC, sub.At.Location())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		sub, err := NewSubscription("  a@b.com\n", now)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", sub.Email)
	})

	for _, bad := range []string{"", "   ", "not-an-email", "a@", "@b.com"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := NewSubscription(bad, now)
			assert.ErrorIs(t, err, ErrInvalidEmail)
		})
	}
}
