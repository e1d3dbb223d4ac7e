package rendering

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), P(g.Text("fidan")))
		require.NoError(t, err)
		assert.Equal(t, "<p>fidan</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<span>templ</span>")
			return err
		})
		out, err := r.RenderComponent(context.Background(), comp)
		require.NoError(t, err)
		assert.Equal(t, "<span>templ</span>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type: int")
	})
}

func TestUniversalRenderer_RenderPage(t *testing.T) {
	r := NewUniversalRenderer()
	e := echo.New()

	t.Run("writes html", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, r.RenderPage(c, http.StatusOK, Div(g.Text("ok"))))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Equal(t, "<div>ok</div>", rec.Body.String())
	})

	t.Run("failing component writes nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, _ = io.WriteString(w, "<div>partial")
			return errors.New("boom")
		})
		assert.Error(t, r.RenderPage(c, http.StatusOK, failing))
		assert.Empty(t, rec.Body.String())
	})
}

func TestUniversalRenderer_RenderCached(t *testing.T) {
	cache, err := NewPageCache(1)
	require.NoError(t, err)
	defer cache.Close()

	r := NewUniversalRenderer()
	e := echo.New()
	key := PageKey{Revision: 1, Selection: "0", Amount: 5}

	builds := 0
	build := func() any {
		builds++
		return Main(g.Text("page"))
	}

	serve := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, r.RenderCached(c, cache, key, build))
		return rec
	}

	first := serve()
	assert.Equal(t, "miss", first.Header().Get("X-Render-Cache"))
	cache.Wait()

	second := serve()
	assert.Equal(t, "hit", second.Header().Get("X-Render-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, builds)
}

func TestPageCache(t *testing.T) {
	t.Run("keys differ by every field", func(t *testing.T) {
		base := PageKey{Revision: 1, Selection: "0", Amount: 5}
		assert.NotEqual(t, base.String(), PageKey{Revision: 2, Selection: "0", Amount: 5}.String())
		assert.NotEqual(t, base.String(), PageKey{Revision: 1, Selection: "none", Amount: 5}.String())
		assert.NotEqual(t, base.String(), PageKey{Revision: 1, Selection: "0", Amount: 10}.String())
		assert.NotEqual(t, base.String(), PageKey{Revision: 1, Selection: "0", Amount: 5, Year: 2027}.String())
	})

	t.Run("set, wait, get, clear", func(t *testing.T) {
		cache, err := NewPageCache(1)
		require.NoError(t, err)
		defer cache.Close()

		key := PageKey{Revision: 3, Selection: "2", Amount: 1}
		cache.Set(key, []byte("<html></html>"))
		cache.Wait()

		body, ok := cache.Get(key)
		require.True(t, ok)
		assert.Equal(t, "<html></html>", string(body))

		cache.Clear()
		_, ok = cache.Get(key)
		assert.False(t, ok)
	})

	t.Run("nil cache is a no-op", func(t *testing.T) {
		var cache *PageCache
		cache.Set(PageKey{}, []byte("x"))
		cache.Wait()
		_, ok := cache.Get(PageKey{})
		assert.False(t, ok)
	})
}
