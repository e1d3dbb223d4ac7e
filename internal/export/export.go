// Package export renders the landing page in its initial state and writes it,
// together with the static assets, to a directory that any file server can host.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"sync"

	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/internal/storage"
	"golang.org/x/sync/errgroup"
)

// maxParallelCopies bounds concurrent asset writes.
const maxParallelCopies = 4

// File is one written output.
type File struct {
	Path string
	Size int64
}

// Manifest lists the files an export produced, sorted by path.
type Manifest struct {
	Files []File
}

// Total returns the combined size of all files.
func (m Manifest) Total() int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Size
	}
	return n
}

// Exporter writes a page and its assets to a store.
type Exporter struct {
	renderer rendering.Renderer
	dst      storage.Store
}

// New creates an Exporter writing to dst.
func New(r rendering.Renderer, dst storage.Store) *Exporter {
	return &Exporter{renderer: r, dst: dst}
}

// Export renders page to index.html and copies every file of assets under
// static/. It stops at the first failed write.
func (x *Exporter) Export(ctx context.Context, page any, assets fs.FS) (Manifest, error) {
	var (
		mu       sync.Mutex
		manifest Manifest
	)
	record := func(p string, n int64) {
		mu.Lock()
		manifest.Files = append(manifest.Files, File{Path: p, Size: n})
		mu.Unlock()
	}

	body, err := x.renderer.RenderComponent(ctx, page)
	if err != nil {
		return Manifest{}, fmt.Errorf("export: render page: %w", err)
	}
	n, err := x.dst.Save(ctx, "index.html", bytes.NewReader(body))
	if err != nil {
		return Manifest{}, err
	}
	record("index.html", n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCopies)

	err = fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		g.Go(func() error {
			f, err := assets.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()

			out := path.Join("static", p)
			n, err := x.dst.Save(gctx, out, f)
			if err != nil {
				return err
			}
			record(out, n)
			return nil
		})
		return nil
	})
	if waitErr := g.Wait(); err == nil {
		err = waitErr
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("export: copy assets: %w", err)
	}

	sort.Slice(manifest.Files, func(i, j int) bool { return manifest.Files[i].Path < manifest.Files[j].Path })
	slog.Info("Export finished", "files", len(manifest.Files), "bytes", manifest.Total())
	return manifest, nil
}
