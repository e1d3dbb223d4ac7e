package pages

import (
	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/motion"
	"github.com/sifiratik/fidan/internal/view"
	"github.com/sifiratik/fidan/web/src/templates/components"
	"github.com/sifiratik/fidan/web/src/templates/layouts"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeProps is everything the landing page depends on.
type HomeProps struct {
	Site       *content.Site
	Selection  accordion.Selection
	Effects    []accordion.Effect
	Amount     donation.Amount
	Newsletter components.NewsletterState
	Flash      view.FlashData
	Locale     language.Tag
	Motion     motion.Table
	HTMXSrc    string
	Year       int
	// Static renders the page for hosting without the app: the FAQ
	// toggles in the browser instead of posting to /faq/toggle.
	Static bool
}

// Home composes the page sections in their fixed order: navbar, hero,
// about, services, steps, FAQ, footer.
func Home(p HomeProps) g.Node {
	site := p.Site
	presets := p.Motion
	if presets == nil {
		presets = motion.Default
	}

	faqList := components.FAQList(site.FAQ.Entries, p.Selection, p.Effects, p.Amount)
	if p.Static {
		faqList = components.StaticFAQList(site.FAQ.Entries, p.Selection)
	}

	return layouts.Base(
		layouts.PageConfig{
			SiteName:    site.Brand.Name,
			Description: site.Hero.Lead,
			Lang:        p.Locale.String(),
			HTMXSrc:     p.HTMXSrc,
			Motion:      presets,
			Flash:       p.Flash,
		},
		components.Navbar(site),
		Main(
			ID("main"),
			components.Hero(site.Hero, p.Amount, p.Selection, p.Locale),
			components.About(site.About, p.Locale),
			components.Services(site.Services, p.Locale, presets),
			components.Steps(site.Steps, p.Locale),
			components.FAQ(site.FAQ, faqList, p.Locale),
		),
		components.SiteFooter(site.Footer, site.Brand, p.Year, p.Newsletter),
	)
}
