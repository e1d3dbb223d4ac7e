package rendering

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// PageKey identifies one full-page render. Every input that changes the
// markup is part of the key, so a content reload (new revision) never serves
// stale pages.
type PageKey struct {
	Revision  uint64
	Selection string
	Amount    int
	// Year is the copyright year printed in the footer.
	Year int
}

func (k PageKey) String() string {
	return fmt.Sprintf("page:%d:%s:%d:%d", k.Revision, k.Selection, k.Amount, k.Year)
}

// PageCache is an in-process cache of rendered pages backed by ristretto.
// A nil *PageCache is valid and caches nothing.
type PageCache struct {
	c *ristretto.Cache[string, []byte]
}

// NewPageCache creates a cache holding up to maxMB megabytes of markup.
func NewPageCache(maxMB int) (*PageCache, error) {
	if maxMB < 1 {
		maxMB = 1
	}
	maxCost := int64(maxMB) << 20
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxCost / 1024 * 10, // ~10x expected items of ~1KiB
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}
	return &PageCache{c: c}, nil
}

// Get returns the cached markup for key.
func (p *PageCache) Get(key PageKey) ([]byte, bool) {
	if p == nil {
		return nil, false
	}
	return p.c.Get(key.String())
}

// Set stores markup for key. Admission is best effort; ristretto may drop it.
func (p *PageCache) Set(key PageKey, body []byte) {
	if p == nil {
		return
	}
	p.c.Set(key.String(), body, int64(len(body)))
}

// Wait blocks until pending writes are applied.
func (p *PageCache) Wait() {
	if p != nil {
		p.c.Wait()
	}
}

// Clear drops every entry.
func (p *PageCache) Clear() {
	if p != nil {
		p.c.Clear()
	}
}

// Close releases the cache's background goroutines.
func (p *PageCache) Close() {
	if p != nil {
		p.c.Close()
	}
}
