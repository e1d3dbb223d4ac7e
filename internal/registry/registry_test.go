package registry

import (
	"testing"

	"github.com/sifiratik/fidan/internal/config"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)
	reg := New(cfg)

	t.Run("config is exposed", func(t *testing.T) {
		assert.Equal(t, ":8080", reg.Config().GetAddr())
	})

	t.Run("set then get", func(t *testing.T) {
		store := content.NewStore(afero.NewMemMapFs(), "")
		Set(reg, ContentStoreKey, store)

		got, ok := Get(reg, ContentStoreKey)
		require.True(t, ok)
		assert.Same(t, store, got)
		assert.Same(t, store, MustGet(reg, ContentStoreKey))
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := Get(reg, PublisherKey)
		assert.False(t, ok)
		assert.Panics(t, func() { MustGet(reg, PublisherKey) })
	})

	t.Run("names are sorted", func(t *testing.T) {
		Set(reg, Key[int]("a.first"), 1)
		names := reg.Names()
		assert.Equal(t, "a.first", names[0])
		assert.Contains(t, names, string(ContentStoreKey))
		assert.IsNonDecreasing(t, names)
	})

	t.Run("mismatched type under the same name", func(t *testing.T) {
		Set(reg, Key[string]("shared.name"), "value")
		_, ok := Get(reg, Key[int]("shared.name"))
		assert.False(t, ok)
	})
}
