package donation

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/domain"
	amounts "github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/events"
	"github.com/sifiratik/fidan/internal/handlers"
	"github.com/sifiratik/fidan/internal/middleware"
	"github.com/sifiratik/fidan/internal/pubsub"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/internal/view"
	"github.com/sifiratik/fidan/web/src/templates/components"
)

// Handler holds dependencies for the donation module's HTTP handlers.
type Handler struct {
	content   *content.Store
	renderer  rendering.Renderer
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewHandler creates a new donation handler with its dependencies.
func NewHandler(store *content.Store, r rendering.Renderer, p pubsub.Publisher) *Handler {
	return &Handler{content: store, renderer: r, publisher: p, now: time.Now}
}

// selection is what the donation form carries: the amount and the FAQ
// selection the page was showing.
type selection struct {
	hero   content.Hero
	amount amounts.Amount
	faq    accordion.Selection
}

func (h *Handler) selected(c echo.Context) (selection, error) {
	site := h.content.Current().Site
	var req handlers.AmountRequest
	if err := c.Bind(&req); err != nil {
		return selection{}, echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	return selection{
		hero:   site.Hero,
		amount: req.Resolve(amounts.Clamp(site.Hero.DefaultAmount)),
		faq:    req.Selection(len(site.FAQ.Entries)),
	}, nil
}

func donateAnchor(s selection) string {
	return "/?" + handlers.PageQuery(s.faq, s.amount) + "#donate"
}

// AmountPost re-renders the selector for the chosen amount.
func (h *Handler) AmountPost(c echo.Context) error {
	sel, err := h.selected(c)
	if err != nil {
		return err
	}
	if !middleware.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, donateAnchor(sel))
	}
	return h.renderer.RenderPage(c, http.StatusOK, components.DonationSelector(sel.hero, sel.amount, sel.faq))
}

// IntentPost reports a donate press. No payment is taken.
func (h *Handler) IntentPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	// 1. Resolve the amount the visitor settled on.
	sel, err := h.selected(c)
	if err != nil {
		return err
	}

	// 2. Publish the intent.
	intent := domain.DonationIntent{ID: uuid.NewString(), Amount: sel.amount.Int(), At: h.now().UTC()}
	if err := pubsub.Publish(ctx, h.publisher, events.DonationIntent, intent); err != nil {
		return err
	}
	logger.Info("Donation intent recorded", "intent_id", intent.ID, "amount", intent.Amount)

	// 3. Confirm in place, or via flash after a redirect.
	if !middleware.IsHTMX(c) {
		view.SetFlashSuccess(c, components.ThanksText(sel.hero, sel.amount))
		return c.Redirect(http.StatusSeeOther, donateAnchor(sel))
	}
	return h.renderer.RenderPage(c, http.StatusOK, components.DonationThanks(sel.hero, sel.amount))
}

// ExplorePost reports an explore-the-programme press.
func (h *Handler) ExplorePost(c echo.Context) error {
	ctx := c.Request().Context()
	if err := pubsub.Publish(ctx, h.publisher, events.DonationExplore, domain.ExploreRequest{At: h.now().UTC()}); err != nil {
		return err
	}
	if !middleware.IsHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#about")
	}
	return c.NoContent(http.StatusNoContent)
}
