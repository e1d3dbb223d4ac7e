package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sifiratik/fidan/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-42" },
	}))
	e.Use(Logger)
	var busRequestID string
	e.POST("/faq/toggle", func(c echo.Context) error {
		busRequestID = pubsub.RequestID(c.Request().Context())
		FromContext(c.Request().Context()).Info("toggled")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/faq/toggle", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := logBuffer.String()
	assert.Contains(t, out, "msg=toggled")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "path=/faq/toggle")
	assert.Contains(t, out, "htmx=true")
	assert.Equal(t, "req-42", busRequestID)
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}
