package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/sifiratik/fidan/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Errors raised with
// echo.NewHTTPError are answered as usual; anything else is a bug and is
// logged with a stack trace before a bare 500 goes out.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err)
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		logger.Error("Internal Server Error (Unhandled)",
			"error", err,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(echo.ErrInternalServerError, c)
	}
}
