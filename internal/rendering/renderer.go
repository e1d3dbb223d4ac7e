package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer defines the contract for rendering any supported component (templ, gomponents, etc.).
// It uses any for the component input to support heterogeneous types.
type Renderer interface {
	// RenderComponent renders a component to a slice of bytes. Useful for htmx fragments and the static export.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage handles full-page rendering for Echo's context.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer is the concrete implementation that handles rendering for multiple component types.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode defines the structural interface for gomponents.Node,
// which only requires an io.Writer.
type gomponentNode interface {
	Render(w io.Writer) error
}

// render inspects the component type and calls the appropriate render method.
func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)

	case gomponentNode:
		return c.Render(w)

	default:
		return fmt.Errorf("unsupported component type: %T. Component must be templ.Component or implement Render(io.Writer) error (like gomponents.Node)", component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses.
// The component is rendered to a buffer first so that a failing component
// produces an error response instead of a truncated page.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements the echo.Renderer interface for use with c.Render(status, name, component).
func (tr *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	// For component-based rendering, the component object is passed in the 'data' parameter.
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}

// RenderCached serves a page from cache when possible, rendering and storing
// it on a miss. A nil cache renders every time.
func (tr *UniversalRenderer) RenderCached(c echo.Context, cache *PageCache, key PageKey, build func() any) error {
	if body, ok := cache.Get(key); ok {
		c.Response().Header().Set("X-Render-Cache", "hit")
		return c.HTMLBlob(http.StatusOK, body)
	}

	body, err := tr.RenderComponent(c.Request().Context(), build())
	if err != nil {
		return err
	}
	cache.Set(key, body)
	c.Response().Header().Set("X-Render-Cache", "miss")
	return c.HTMLBlob(http.StatusOK, body)
}
