package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// limiterIdle is how long a client's bucket survives without requests.
const limiterIdle = 3 * time.Minute

// TooManyRequestsMessage is the plain-text body of a throttled response.
const TooManyRequestsMessage = "Too many requests. Please try again later."

// RateLimiter throttles the routes it wraps to perMinute requests per client
// IP, refilled evenly over the minute. A fresh client may spend the whole
// minute's allowance at once. Values below one are raised to one.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	perMinute = max(perMinute, 1)

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		Burst:     perMinute,
		ExpiresIn: limiterIdle,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, client string, err error) error {
			FromContext(c.Request().Context()).Warn("Request throttled", "client", client)
			return c.String(http.StatusTooManyRequests, TooManyRequestsMessage)
		},
	})
}
