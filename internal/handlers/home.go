package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/motion"
	"github.com/sifiratik/fidan/internal/rendering"
	"github.com/sifiratik/fidan/internal/view"
	"github.com/sifiratik/fidan/web/src/templates/pages"
	"golang.org/x/text/language"
)

// HomeDependencies are the services the landing page reads from.
type HomeDependencies struct {
	Content  *content.Store
	Renderer *rendering.UniversalRenderer
	Cache    *rendering.PageCache
	Locale   string
	HTMXSrc  string
	// Now is the clock for the footer year; nil means time.Now.
	Now func() time.Time
}

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	content  *content.Store
	renderer *rendering.UniversalRenderer
	cache    *rendering.PageCache
	locale   language.Tag
	htmxSrc  string
	now      func() time.Time
}

// NewHomeHandler creates a new HomeHandler. An unparsable locale falls back to Turkish.
func NewHomeHandler(deps HomeDependencies) *HomeHandler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &HomeHandler{
		content:  deps.Content,
		renderer: deps.Renderer,
		cache:    deps.Cache,
		locale:   ParseLocale(deps.Locale),
		htmxSrc:  deps.HTMXSrc,
		now:      now,
	}
}

// ParseLocale reads a BCP 47 tag, defaulting to Turkish.
func ParseLocale(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		if raw != "" {
			slog.Warn("Unknown site locale, using tr", "locale", raw, "error", err)
		}
		return language.Turkish
	}
	return tag
}

// Props builds the page properties for a given state of the interactive widgets.
func (h *HomeHandler) Props(site *content.Site, sel accordion.Selection, effects []accordion.Effect, amount donation.Amount) pages.HomeProps {
	return pages.HomeProps{
		Site:      site,
		Selection: sel,
		Effects:   effects,
		Amount:    amount,
		Locale:    h.locale,
		Motion:    motion.Default,
		HTMXSrc:   h.htmxSrc,
		Year:      h.now().Year(),
	}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	// 1. Bind the query left behind by the no-script forms.
	var q HomeQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	// 2. Derive widget state from the current content snapshot.
	snap := h.content.Current()
	site := snap.Site
	sel, effects := q.Selection(len(site.FAQ.Entries))
	amount := q.DonationAmount(donation.Clamp(site.Hero.DefaultAmount))

	// 3. Flash messages only exist after a no-script redirect.
	flash := view.GetFlashData(c)

	props := h.Props(site, sel, effects, amount)
	props.Flash = flash

	// 4. Plain renders are cacheable: same content revision, selection, amount and year give the same bytes.
	if flash.Empty() && len(effects) == 0 {
		key := rendering.PageKey{Revision: snap.Revision, Selection: sel.String(), Amount: amount.Int(), Year: props.Year}
		return h.renderer.RenderCached(c, h.cache, key, func() any { return pages.Home(props) })
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.Home(props))
}
