package newsletter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/config"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/handlers"
	signup "github.com/sifiratik/fidan/internal/newsletter"
	"github.com/sifiratik/fidan/internal/registry"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

type failingSink struct{}

func (failingSink) Record(context.Context, domain.Subscription) error {
	return errors.New("disk full")
}

func setupNewsletterTest(t *testing.T, sink domain.NewsletterSink, rateLimit string) *echo.Echo {
	t.Helper()

	store := content.NewStore(afero.NewMemMapFs(), "")
	require.NoError(t, store.Load())

	cfg, err := config.FromEnv(func(k string) string {
		if k == "RATE_LIMIT_PER_MIN" {
			return rateLimit
		}
		return ""
	})
	require.NoError(t, err)

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	m := New(Dependencies{
		Content:  store,
		Renderer: rendering.NewUniversalRenderer(),
		Service:  signup.NewService(sink),
	})
	require.NoError(t, m.Boot(context.Background(), e.Group(""), registry.New(cfg)))
	return e
}

func subscribe(e *echo.Echo, email string, htmx bool) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/newsletter", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubscribePost_HTMX(t *testing.T) {
	// --- Setup ---
	sink := &signup.MemorySink{}
	e := setupNewsletterTest(t, sink, "100")

	// --- Act ---
	rec := subscribe(e, "a@b.com", true)

	// --- Assert ---
	require.Equal(t, http.StatusOK, rec.Code, "no redirect for htmx")
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Body.String(), `<p id="newsletter-form" class="newsletter__thanks" role="status">`)

	subs := sink.Subscriptions()
	require.Len(t, subs, 1, "the address reaches the sink exactly once")
	assert.Equal(t, "a@b.com", subs[0].Email)
}

func TestSubscribePost_Invalid(t *testing.T) {
	sink := &signup.MemorySink{}
	e := setupNewsletterTest(t, sink, "100")

	for _, email := range []string{"", "not-an-email", "a@"} {
		rec := subscribe(e, email, true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `aria-invalid="true"`, "email %q", email)
		assert.Contains(t, body, `role="alert"`)
	}
	assert.Empty(t, sink.Subscriptions(), "invalid addresses never reach the sink")
}

func TestSubscribePost_NoScript(t *testing.T) {
	sink := &signup.MemorySink{}
	e := setupNewsletterTest(t, sink, "100")

	t.Run("valid address redirects with a flash", func(t *testing.T) {
		rec := subscribe(e, "  fidan@example.org ", false)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#newsletter-form", rec.Header().Get(echo.HeaderLocation))
		assert.NotEmpty(t, rec.Result().Cookies())
		require.Len(t, sink.Subscriptions(), 1)
		assert.Equal(t, "fidan@example.org", sink.Subscriptions()[0].Email)
	})

	t.Run("invalid address redirects too", func(t *testing.T) {
		rec := subscribe(e, "nope", false)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Len(t, sink.Subscriptions(), 1)
	})
}

func TestSubscribePost_SinkFailure(t *testing.T) {
	e := setupNewsletterTest(t, failingSink{}, "100")

	rec := subscribe(e, "a@b.com", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubscribePost_TooLong(t *testing.T) {
	sink := &signup.MemorySink{}
	e := setupNewsletterTest(t, sink, "100")

	rec := subscribe(e, strings.Repeat("a", 330)+"@b.com", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sink.Subscriptions())
}

func TestSubscribePost_RateLimited(t *testing.T) {
	sink := &signup.MemorySink{}
	e := setupNewsletterTest(t, sink, "2")

	var codes []int
	for i := 0; i < 3; i++ {
		codes = append(codes, subscribe(e, "a@b.com", true).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Len(t, sink.Subscriptions(), 2)
}
