package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Snapshot is one loaded version of the copy. Revision increases with every
// successful load so caches can key on it.
type Snapshot struct {
	Site     *Site
	Revision uint64
}

// Store holds the current snapshot. Reads never block; a reload swaps the
// whole snapshot at once so a request sees one consistent version.
type Store struct {
	fs       afero.Fs
	path     string
	current  atomic.Pointer[Snapshot]
	revision atomic.Uint64
}

// NewStore creates a store that reads path from fs. An empty path serves
// Defaults.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the content file the store reads, if any.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the copy and makes it current. On error the
// previous snapshot, if any, stays current.
func (s *Store) Load() error {
	site, err := s.read()
	if err != nil {
		return err
	}
	s.current.Store(&Snapshot{Site: site, Revision: s.revision.Add(1)})
	slog.Info("Site content loaded", "path", s.path, "revision", s.revision.Load(), "faq_entries", len(site.FAQ.Entries))
	return nil
}

// Current returns the active snapshot. It falls back to Defaults if nothing
// has been loaded yet.
func (s *Store) Current() Snapshot {
	if snap := s.current.Load(); snap != nil {
		return *snap
	}
	site := Defaults()
	site.Normalize()
	return Snapshot{Site: site}
}

func (s *Store) read() (*Site, error) {
	if s.path == "" {
		site := Defaults()
		site.Normalize()
		return site, site.Validate()
	}

	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", s.path, err)
	}
	return Decode(raw)
}

// Decode parses a YAML document over the compiled-in defaults, so a file only
// needs the sections it changes. Unknown keys are rejected; an empty
// document yields the defaults.
func Decode(raw []byte) (*Site, error) {
	site := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	site.Normalize()
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}
