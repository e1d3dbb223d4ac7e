package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sifiratik/fidan/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overrideYAML = `
faq:
  title: Sıkça sorulanlar
  entries:
    - question: Birinci soru?
      answer: Birinci cevap.
    - question: İkinci soru?
      answer: İkinci cevap.
about:
  progress: 140
`

func TestDefaults_AreValid(t *testing.T) {
	site := Defaults()
	site.Normalize()

	require.NoError(t, site.Validate())
	assert.Len(t, site.FAQ.Entries, 4)
	assert.Equal(t, 5, site.Hero.DefaultAmount)
	assert.Equal(t, []int{1, 3, 5, 10, 20}, site.Hero.QuickPicks)
	assert.Equal(t, 80, site.Nav.ScrollThreshold)
}

func TestDecode(t *testing.T) {
	t.Run("overrides only the given sections", func(t *testing.T) {
		site, err := Decode([]byte(overrideYAML))
		require.NoError(t, err)

		assert.Equal(t, "Sıkça sorulanlar", site.FAQ.Title)
		assert.Len(t, site.FAQ.Entries, 2)
		assert.Equal(t, "İkinci soru?", site.FAQ.Entries[1].Question)
		assert.Equal(t, Defaults().Hero.Lead, site.Hero.Lead, "untouched sections keep their defaults")
	})

	t.Run("clamps progress", func(t *testing.T) {
		site, err := Decode([]byte(overrideYAML))
		require.NoError(t, err)
		assert.Equal(t, 100, site.About.Progress)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		site, err := Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, Defaults().FAQ.Entries, site.FAQ.Entries)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := Decode([]byte("faq:\n  tittle: typo\n"))
		assert.Error(t, err)
	})

	t.Run("rejects an empty FAQ", func(t *testing.T) {
		_, err := Decode([]byte("faq:\n  entries: []\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})

	t.Run("rejects an entry without an answer", func(t *testing.T) {
		_, err := Decode([]byte("faq:\n  entries:\n    - question: Soru?\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})

	t.Run("rejects non-positive quick picks", func(t *testing.T) {
		_, err := Decode([]byte("hero:\n  quick_picks: [0, 5]\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})
}

func TestStore(t *testing.T) {
	t.Run("serves defaults without a file", func(t *testing.T) {
		store := NewStore(afero.NewMemMapFs(), "")
		require.NoError(t, store.Load())

		snap := store.Current()
		assert.Equal(t, uint64(1), snap.Revision)
		assert.Len(t, snap.Site.FAQ.Entries, 4)
	})

	t.Run("current falls back to defaults before load", func(t *testing.T) {
		store := NewStore(afero.NewMemMapFs(), "content.yaml")
		snap := store.Current()
		assert.Equal(t, uint64(0), snap.Revision)
		assert.NotNil(t, snap.Site)
	})

	t.Run("loads a file and keeps the last good version on failure", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "site/content.yaml", []byte(overrideYAML), 0o644))

		store := NewStore(fs, "site/content.yaml")
		require.NoError(t, store.Load())
		first := store.Current()
		assert.Len(t, first.Site.FAQ.Entries, 2)

		require.NoError(t, afero.WriteFile(fs, "site/content.yaml", []byte("faq:\n  entries: []\n"), 0o644))
		assert.Error(t, store.Load())

		after := store.Current()
		assert.Equal(t, first.Revision, after.Revision)
		assert.Len(t, after.Site.FAQ.Entries, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		store := NewStore(afero.NewMemMapFs(), "nope.yaml")
		assert.Error(t, store.Load())
	})
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrideYAML), 0o644))

	store := NewStore(afero.NewOsFs(), path)
	require.NoError(t, store.Load())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)

	updated := "faq:\n  entries:\n    - question: Tek soru?\n      answer: Tek cevap.\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		return len(store.Current().Site.FAQ.Entries) == 1
	}, 3*time.Second, 20*time.Millisecond, "store should pick up the edited file")
	assert.Greater(t, store.Current().Revision, uint64(1))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
