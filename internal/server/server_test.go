package server

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer for the test's lifetime.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func errorEcho(path string, h echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	setupErrorHandling(e)
	e.Any(path, h)
	return e
}

func TestHTTPErrorHandler_UnhandledErrorLogsStack(t *testing.T) {
	logs := captureLogs(t)
	e := errorEcho("/donation/intent", func(c echo.Context) error {
		return fmt.Errorf("render donation thanks: %w", errors.New("template exploded"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/donation/intent", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "template exploded", "internal details stay out of the response")

	out := logs.String()
	assert.Contains(t, out, "Internal Server Error (Unhandled)")
	assert.Contains(t, out, `error="render donation thanks: template exploded"`)
	assert.Contains(t, out, "stack_trace=")
	assert.Contains(t, out, "runtime/debug/stack.go")
	assert.Contains(t, out, "internal/server/errors.go")
}

func TestHTTPErrorHandler_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		logged  bool
		message string
	}{
		{"bad request", echo.NewHTTPError(http.StatusBadRequest, "index is required"), http.StatusBadRequest, false, "index is required"},
		{"throttled", echo.ErrTooManyRequests, http.StatusTooManyRequests, false, "Too Many Requests"},
		{"unavailable", echo.NewHTTPError(http.StatusServiceUnavailable, "content reloading"), http.StatusServiceUnavailable, true, "content reloading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			e := errorEcho("/faq/toggle", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/faq/toggle", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			if tt.logged {
				assert.NotEmpty(t, logs.String())
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestHTTPErrorHandler_NotFound(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	logs := captureLogs(t)
	e := errorEcho("/partial", func(c echo.Context) error {
		if err := c.String(http.StatusAccepted, "partial"); err != nil {
			return err
		}
		return errors.New("late failure")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
	assert.Empty(t, logs.String())
}
