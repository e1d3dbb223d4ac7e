package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStore = sessions.NewCookieStore([]byte("flash-test-secret-0123456789abcd"))

// sessionContext returns a context that went through the session middleware.
func sessionContext(t *testing.T) echo.Context {
	t.Helper()
	var captured echo.Context
	capture := session.Middleware(testStore)(func(c echo.Context) error {
		captured = c
		return nil
	})
	e := echo.New()
	require.NoError(t, capture(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
	return captured
}

func TestFlash_ReadOnce(t *testing.T) {
	tests := []struct {
		name    string
		set     func(echo.Context)
		success []string
		failure []string
	}{
		{
			name:    "success",
			set:     func(c echo.Context) { view.SetFlashSuccess(c, "Abone oldunuz.") },
			success: []string{"Abone oldunuz."},
		},
		{
			name:    "error",
			set:     func(c echo.Context) { view.SetFlashError(c, "Geçersiz e-posta.") },
			failure: []string{"Geçersiz e-posta."},
		},
		{
			name: "both kinds keep their order",
			set: func(c echo.Context) {
				view.SetFlashSuccess(c, "bir")
				view.SetFlashError(c, "hata")
				view.SetFlashSuccess(c, "iki")
			},
			success: []string{"bir", "iki"},
			failure: []string{"hata"},
		},
		{
			name: "nothing set",
			set:  func(echo.Context) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sessionContext(t)
			tt.set(c)

			got := view.GetFlashData(c)
			assert.Equal(t, tt.success, got.Success)
			assert.Equal(t, tt.failure, got.Error)
			assert.Equal(t, tt.success == nil && tt.failure == nil, got.Empty())

			assert.True(t, view.GetFlashData(c).Empty(), "flashes are consumed by the first read")
		})
	}
}

func TestFlash_SurvivesRedirect(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(testStore))
	e.POST("/newsletter", func(c echo.Context) error {
		view.SetFlashSuccess(c, "Teşekkürler!")
		return c.Redirect(http.StatusSeeOther, "/")
	})
	e.GET("/", func(c echo.Context) error {
		if f := view.GetFlashData(c); !f.Empty() {
			return c.String(http.StatusOK, f.Success[0])
		}
		return c.String(http.StatusOK, "none")
	})

	post := httptest.NewRecorder()
	e.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/newsletter", nil))
	require.Equal(t, http.StatusSeeOther, post.Code)

	follow := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range post.Result().Cookies() {
		follow.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, follow)

	assert.Equal(t, "Teşekkürler!", rec.Body.String())
}

func TestFlash_WithoutSessionMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotPanics(t, func() { view.SetFlashError(c, "ignored") })
	assert.True(t, view.GetFlashData(c).Empty())
}
