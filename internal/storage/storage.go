// Package storage writes generated files to a filesystem. The static export
// uses it to lay out the rendered page and its assets.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// Store is a destination for generated files. Paths are slash-separated and
// relative to the store root.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (int64, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// AferoStore implements Store over an afero filesystem.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a store rooted at the top of fs.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDirStore creates a store rooted at dir on the OS filesystem.
func NewDirStore(dir string) *AferoStore {
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// clean normalises name and rejects paths that climb out of the root.
func clean(name string) (string, error) {
	p := path.Clean("/" + strings.TrimSpace(name))
	if p == "/" {
		return "", fmt.Errorf("storage: empty path %q", name)
	}
	return strings.TrimPrefix(p, "/"), nil
}

// Save writes r to name, creating parent directories. An existing file is replaced.
func (s *AferoStore) Save(ctx context.Context, name string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p, err := clean(name)
	if err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return 0, fmt.Errorf("storage: create directory for %s: %w", p, err)
	}
	f, err := s.fs.Create(p)
	if err != nil {
		return 0, fmt.Errorf("storage: create %s: %w", p, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("storage: write %s: %w", p, err)
	}
	return n, nil
}

// Open opens name for reading.
func (s *AferoStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := clean(name)
	if err != nil {
		return nil, err
	}
	return s.fs.OpenFile(p, os.O_RDONLY, 0)
}

// Delete removes name.
func (s *AferoStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := clean(name)
	if err != nil {
		return err
	}
	return s.fs.Remove(p)
}

// Exists reports whether name is present.
func (s *AferoStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p, err := clean(name)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, p)
}
