package components

import (
	"fmt"

	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/motion"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// NewsletterFormID is the id of the newsletter form, the htmx swap target.
const NewsletterFormID = "newsletter-form"

// NewsletterState is what the newsletter form shows: the blank form, the
// form with an error and the rejected value, or the thank-you note.
type NewsletterState struct {
	Email   string
	Invalid bool
	Done    bool
}

// SiteFooter renders the contact cards, the link columns and the newsletter form.
func SiteFooter(f content.Footer, brand content.Brand, year int, state NewsletterState) g.Node {
	return g.Group([]g.Node{
		contactCards(f.Contacts),
		Footer(
			ID("contact"),
			Class("site-footer"),
			Div(Class("site-footer__grid container"),
				Div(Class("site-footer__col"),
					g.If(brand.Logo != "", Img(Src(brand.Logo), Alt(brand.Name), Height("40"), Loading("lazy"))),
					H4(g.Text(f.AboutTitle)),
					P(g.Text(f.AboutText)),
					g.If(f.AboutCTA.Label != "", A(Href(f.AboutCTA.Href), Class("btn btn--primary motion-hover"), g.Text(f.AboutCTA.Label))),
				),
				Div(Class("site-footer__col"),
					H4(g.Text(f.LinksTitle)),
					linkList("site-footer__links", f.QuickLinks),
				),
				Div(Class("site-footer__col"),
					H4(g.Text(f.NewsTitle)),
					newsList(f.News),
				),
				Div(ID("newsletter"), Class("site-footer__col"),
					H4(g.Text(f.Newsletter.Title)),
					P(g.Text(f.Newsletter.Lead)),
					NewsletterForm(f.Newsletter, state),
				),
			),
			Div(Class("site-footer__bottom container"),
				P(g.Text(copyright(f.Copyright, year))),
				linkList("site-footer__legal", f.LegalLinks),
				A(Href("#donate"), Class("back-to-top motion-hover"), Aria("label", f.BackToTop), Icon("up", "")),
			),
		),
	})
}

// NewsletterForm renders the sign-up form, or the thank-you note once the
// address has been accepted. It is also the fragment returned to htmx.
func NewsletterForm(n content.Newsletter, state NewsletterState) g.Node {
	if state.Done {
		return P(ID(NewsletterFormID), Class("newsletter__thanks"), Role("status"), g.Text(n.Thanks))
	}

	return Form(
		ID(NewsletterFormID),
		Class("newsletter"),
		Method("post"),
		Action("/newsletter"),
		hx.Post("/newsletter"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Label(For("newsletter-email"), Class("sr-only"), g.Text(n.Placeholder)),
		Input(
			Type("email"),
			ID("newsletter-email"),
			Name("email"),
			Placeholder(n.Placeholder),
			AutoComplete("email"),
			Required(),
			Value(state.Email),
			g.If(state.Invalid, Aria("invalid", "true")),
			g.If(state.Invalid, Aria("describedby", "newsletter-error")),
		),
		Button(Type("submit"), Class("btn btn--primary motion-hover"), g.Text(n.Submit)),
		g.If(state.Invalid, P(ID("newsletter-error"), Class("form-error"), Role("alert"), g.Text(n.Invalid))),
	)
}

func contactCards(cards []content.ContactCard) g.Node {
	if len(cards) == 0 {
		return nil
	}
	nodes := make([]g.Node, 0, len(cards))
	for i, c := range cards {
		nodes = append(nodes, Div(
			Class("contact-card"),
			Data("reveal", motion.Card),
			Style(fmt.Sprintf("--i:%d", i)),
			Icon(c.Icon, "contact-card__icon"),
			Div(Strong(g.Text(c.Title)), P(g.Text(c.Desc))),
		))
	}
	return Section(Class("contacts container"), g.Group(nodes))
}

func linkList(class string, links []content.Link) g.Node {
	nodes := make([]g.Node, 0, len(links))
	for _, l := range links {
		nodes = append(nodes, Li(A(Href(l.Href), g.Text(l.Label))))
	}
	return Ul(Class(class), g.Group(nodes))
}

func newsList(items []content.NewsItem) g.Node {
	nodes := make([]g.Node, 0, len(items))
	for _, n := range items {
		nodes = append(nodes, Li(Class("news-item"),
			g.If(n.Image != "", Img(Src(n.Image), Alt(""), Loading("lazy"))),
			Div(
				Small(g.Text(n.Date)),
				A(Href(n.Href), g.Text(n.Title)),
			),
		))
	}
	return Ul(Class("site-footer__news"), g.Group(nodes))
}

func copyright(format string, year int) string {
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, year)
}
