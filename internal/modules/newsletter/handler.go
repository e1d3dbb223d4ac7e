package newsletter

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/handlers"
	"github.com/sifiratik/fidan/internal/middleware"
	signup "github.com/sifiratik/fidan/internal/newsletter"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/internal/view"
	"github.com/sifiratik/fidan/web/src/templates/components"
)

const anchor = "/#" + components.NewsletterFormID

// Handler holds dependencies for the newsletter module's HTTP handlers.
type Handler struct {
	content  *content.Store
	renderer rendering.Renderer
	service  *signup.Service
}

// NewHandler creates a new newsletter handler with its dependencies.
func NewHandler(store *content.Store, r rendering.Renderer, svc *signup.Service) *Handler {
	return &Handler{content: store, renderer: r, service: svc}
}

// SubscribePost accepts a sign-up. htmx requests get the form fragment back
// with a 200; plain posts are redirected to the form with a flash message.
func (h *Handler) SubscribePost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	nl := h.content.Current().Site.Footer.Newsletter

	// 1. Bind and validate the form.
	var req handlers.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "email is too long")
	}

	// 2. Hand the address to the service. An invalid address is a form error, not a failure.
	sub, err := h.service.Subscribe(ctx, req.Email)
	if errors.Is(err, domain.ErrInvalidEmail) {
		logger.Info("Newsletter address rejected")
		if !middleware.IsHTMX(c) {
			view.SetFlashError(c, nl.Invalid)
			return c.Redirect(http.StatusSeeOther, anchor)
		}
		state := components.NewsletterState{Email: req.Email, Invalid: true}
		return h.renderer.RenderPage(c, http.StatusOK, components.NewsletterForm(nl, state))
	}
	if err != nil {
		return err
	}
	logger.Info("Newsletter subscription accepted", "subscription_id", sub.ID)

	// 3. Confirm.
	if !middleware.IsHTMX(c) {
		view.SetFlashSuccess(c, nl.Thanks)
		return c.Redirect(http.StatusSeeOther, anchor)
	}
	return h.renderer.RenderPage(c, http.StatusOK, components.NewsletterForm(nl, components.NewsletterState{Done: true}))
}
