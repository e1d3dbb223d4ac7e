package faq

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/handlers"
	"github.com/sifiratik/fidan/internal/middleware"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/web/src/templates/components"
)

// Handler holds dependencies for the FAQ module's HTTP handlers.
type Handler struct {
	content  *content.Store
	renderer rendering.Renderer
}

// NewHandler creates a new FAQ handler with its dependencies.
func NewHandler(store *content.Store, r rendering.Renderer) *Handler {
	return &Handler{content: store, renderer: r}
}

// TogglePost applies one toggle to the selection carried by the form and
// answers with the re-rendered list. The request carries the whole state, so
// queued activations apply in order against the list each one saw.
func (h *Handler) TogglePost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	// 1. Bind and validate the form.
	var req handlers.ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "index is required")
	}

	// 2. Reduce against the current entries. An index outside the list is ignored.
	site := h.content.Current().Site
	entries := site.FAQ.Entries
	amount := donation.ParseOr(req.Amount, donation.Clamp(site.Hero.DefaultAmount))
	prev := accordion.Parse(req.Open, len(entries))
	next := prev
	var effects []accordion.Effect
	if i, ok := accordion.ParseIndex(req.Index, len(entries)); ok {
		next = accordion.Reduce(prev, accordion.Action{Index: i})
		effects = accordion.Effects(prev, next)
	} else {
		logger.Debug("FAQ toggle ignored", "index", req.Index, "entries", len(entries))
	}
	logger.Debug("FAQ toggled", "from", prev.String(), "to", next.String())

	// 3. A plain form post goes back to the page with the new state in the query.
	if !middleware.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/?"+handlers.PageQuery(next, amount)+"#faq")
	}

	// 4. htmx swaps the list in place.
	return h.renderer.RenderPage(c, http.StatusOK, components.FAQList(entries, next, effects, amount))
}
