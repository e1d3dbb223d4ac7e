package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedEcho(perMinute int) *echo.Echo {
	e := echo.New()
	e.POST("/donation/intent", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, RateLimiter(perMinute))
	return e
}

func postFrom(e *echo.Echo, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/donation/intent", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstThenThrottle(t *testing.T) {
	e := newLimitedEcho(3)

	for i := 1; i <= 3; i++ {
		require.Equal(t, http.StatusNoContent, postFrom(e, "198.51.100.1:1000").Code, "request %d", i)
	}

	rec := postFrom(e, "198.51.100.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, TooManyRequestsMessage, rec.Body.String())

	assert.Equal(t, http.StatusNoContent, postFrom(e, "198.51.100.2:1000").Code, "other clients keep their own allowance")
}

func TestRateLimiter_NonPositiveLimitAllowsOne(t *testing.T) {
	for _, limit := range []int{0, -5} {
		e := newLimitedEcho(limit)
		assert.Equal(t, http.StatusNoContent, postFrom(e, "203.0.113.9:1").Code, "limit %d", limit)
		assert.Equal(t, http.StatusTooManyRequests, postFrom(e, "203.0.113.9:1").Code, "limit %d", limit)
	}
}
