package components

import (
	"fmt"

	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/motion"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// FAQListID is the id of the accordion form, the htmx swap target.
const FAQListID = "faq-list"

// Glyphs of the toggle affordance.
const (
	GlyphExpand   = "+"
	GlyphCollapse = "−"
)

// FAQ renders the section shell: list, either FAQList or StaticFAQList,
// beside the illustration.
func FAQ(s content.FAQSection, list g.Node, tag language.Tag) g.Node {
	return Section(
		ID("faq"),
		Class("faq section"),
		Div(Class("faq__grid container"),
			Div(Class("faq__copy"),
				Div(Class("section__head"), Data("reveal", motion.Section),
					g.If(s.Eyebrow != "", P(Class("eyebrow"), g.Text(Upper(tag, s.Eyebrow)))),
					H2(Class("section__title"), g.Text(s.Title)),
					g.If(s.Lead != "", P(Class("section__lead"), g.Text(s.Lead))),
				),
				list,
			),
			g.If(s.Image != "", Figure(Class("faq__media"), Data("reveal", motion.Section),
				Img(Src(s.Image), Alt(s.ImageAlt), Loading("lazy")),
			)),
		),
	)
}

// FAQList renders the accordion. Exactly the entry selected by sel shows its
// answer; the others omit it from the markup. Each toggle button submits its
// index together with the current selection, so one activation applies one
// toggle. effects marks the entries that changed in the request being
// answered so their transition plays. amount rides along so the no-script
// GET keeps the donation selector where it was.
func FAQList(entries []domain.FAQEntry, sel accordion.Selection, effects []accordion.Effect, amount donation.Amount) g.Node {
	items := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		items = append(items, faqItem(i, e, sel.IsOpen(i), effects))
	}

	return Form(
		ID(FAQListID),
		Class("faq__list"),
		Method("get"),
		Action("/#faq"),
		hx.Post("/faq/toggle"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-sync", "this:queue all"),
		Input(Type("hidden"), Name("open"), Value(sel.String())),
		Input(Type("hidden"), Name("amount"), Value(amount.String())),
		g.Group(items),
	)
}

// StaticFAQList renders the accordion for pages served without the app:
// one <details> per entry sharing a name, so the browser keeps at most one
// open. sel picks the entry open on load.
func StaticFAQList(entries []domain.FAQEntry, sel accordion.Selection) g.Node {
	items := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		panelID := fmt.Sprintf("faq-panel-%d", i)
		items = append(items, Details(
			Class("faq-item motion-faq-card"),
			Name("faq"),
			g.If(sel.IsOpen(i), g.Attr("open")),
			Span(Class("faq-item__accent motion-faq-accent"), Aria("hidden", "true")),
			Summary(
				Class("faq-item__toggle"),
				Span(Class("faq-item__question"), g.Text(e.Question)),
				Span(Class("faq-item__icon motion-faq-icon"), Aria("hidden", "true"),
					Span(Class("faq-item__glyph faq-item__glyph--expand"), g.Text(GlyphExpand)),
					Span(Class("faq-item__glyph faq-item__glyph--collapse"), g.Text(GlyphCollapse)),
				),
			),
			Div(ID(panelID), Class("faq-item__panel motion-faq-content"), P(g.Text(e.Answer))),
		))
	}
	return Div(ID(FAQListID), Class("faq__list faq__list--static"), g.Group(items))
}

func faqItem(i int, e domain.FAQEntry, open bool, effects []accordion.Effect) g.Node {
	buttonID := fmt.Sprintf("faq-button-%d", i)
	panelID := fmt.Sprintf("faq-panel-%d", i)

	class := "faq-item motion-faq-card"
	expanded := "false"
	glyph := GlyphExpand
	if open {
		class += " is-open"
		expanded = "true"
		glyph = GlyphCollapse
	}

	var effect g.Node
	if kind, ok := accordion.EffectFor(effects, i); ok {
		effect = Data("effect", string(kind))
	}

	return Div(
		Class(class),
		effect,
		Span(Class("faq-item__accent motion-faq-accent"), Aria("hidden", "true")),
		H3(Class("faq-item__heading"),
			Button(
				Type("submit"),
				ID(buttonID),
				Name("index"),
				Value(itoa(i)),
				Class("faq-item__toggle"),
				Aria("expanded", expanded),
				Aria("controls", panelID),
				Span(Class("faq-item__question"), g.Text(e.Question)),
				Span(Class("faq-item__icon motion-faq-icon"), Aria("hidden", "true"), g.Text(glyph)),
			),
		),
		g.If(open, Div(
			ID(panelID),
			Role("region"),
			Aria("labelledby", buttonID),
			Class("faq-item__panel motion-faq-content"),
			P(g.Text(e.Answer)),
		)),
	)
}
