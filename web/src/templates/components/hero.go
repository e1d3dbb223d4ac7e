package components

import (
	"fmt"
	"strings"

	"github.com/sifiratik/fidan/internal/accordion"
	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/donation"
	"github.com/sifiratik/fidan/internal/motion"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// DonationSelectorID is the id of the amount form, the htmx swap target.
const DonationSelectorID = "donation-selector"

// DonationResultID is the id of the region that receives the donate confirmation.
const DonationResultID = "donation-result"

// Hero renders the first screen with the donation-amount selector.
func Hero(h content.Hero, amount donation.Amount, sel accordion.Selection, tag language.Tag) g.Node {
	return Section(
		ID("donate"),
		Class("hero"),
		Div(Class("hero__content container"),
			Div(Class("hero__copy"),
				g.If(h.Eyebrow != "", P(Class("eyebrow"), Data("reveal", motion.FadeUp), g.Text(Upper(tag, h.Eyebrow)))),
				H1(Class("hero__title"), Data("reveal", motion.FadeUp), Style("--i:1"), titleLines(h.Title, h.Highlight)),
				g.If(h.Lead != "", P(Class("hero__lead"), Data("reveal", motion.FadeUp), Style("--i:2"), g.Text(h.Lead))),
				Div(Class("hero__card"), Data("reveal", motion.Card),
					DonationSelector(h, amount, sel),
					Div(ID(DonationResultID), Class("hero__result"), Aria("live", "polite")),
					assurances(h.Assurances),
				),
				trustStrip(h.Trust),
			),
			Figure(Class("hero__media"), Data("reveal", motion.Section),
				g.If(h.Image != "", Img(Src(h.Image), Alt(h.ImageAlt), Loading("eager"))),
				g.If(h.PlantedBadge != "", Span(Class("badge badge--planted"), g.Text(h.PlantedBadge))),
				g.If(h.CarbonBadge != "", Span(Class("badge badge--carbon"), g.Text(h.CarbonBadge))),
			),
		),
	)
}

// DonationSelector renders the amount form. It is also the fragment returned
// by the amount endpoint. Without script the quick picks and the number field
// submit to the index route; the donate button posts the intent. The FAQ
// selection rides along in a hidden field so that round trip keeps it.
func DonationSelector(h content.Hero, amount donation.Amount, sel accordion.Selection) g.Node {
	picks := make([]g.Node, 0, len(h.QuickPicks))
	for _, q := range h.QuickPicks {
		pressed := "false"
		class := "pick motion-hover"
		if amount.IsPicked(q) {
			pressed = "true"
			class += " pick--active"
		}
		picks = append(picks, Button(
			Type("submit"),
			Name("pick"),
			Value(itoa(q)),
			Class(class),
			Aria("pressed", pressed),
			g.Textf("%d %s", q, h.PickSuffix),
		))
	}

	return Form(
		ID(DonationSelectorID),
		Class("donation"),
		Method("get"),
		Action("/#donate"),
		hx.Post("/donation/amount"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Input(Type("hidden"), Name("open"), Value(sel.String())),
		Label(For("donation-amount"), Class("donation__label"), g.Text(h.AmountLabel)),
		Div(Class("donation__picks"), Role("group"), Aria("label", h.AmountLabel), g.Group(picks)),
		Div(Class("donation__input"),
			Input(
				Type("number"),
				ID("donation-amount"),
				Name("amount"),
				g.Attr("min", itoa(donation.MinAmount)),
				g.Attr("inputmode", "numeric"),
				Value(amount.String()),
				hx.Post("/donation/amount"),
				hx.Trigger("change"),
				hx.Target("#"+DonationSelectorID),
				hx.Swap("outerHTML"),
			),
			Span(Class("donation__unit"), g.Text(h.UnitLabel)),
		),
		Div(Class("donation__actions"),
			Button(
				Type("submit"),
				Class("btn btn--primary motion-hover"),
				g.Attr("formaction", "/donation/intent"),
				g.Attr("formmethod", "post"),
				hx.Post("/donation/intent"),
				hx.Target("#"+DonationResultID),
				hx.Swap("innerHTML"),
				g.Textf("%d %s", amount.Int(), h.DonateSuffix),
			),
			Button(
				Type("submit"),
				Class("btn btn--ghost motion-hover"),
				g.Attr("formaction", "/donation/explore"),
				g.Attr("formmethod", "post"),
				hx.Post("/donation/explore"),
				hx.Swap("none"),
				g.Text(h.ExploreLabel),
			),
		),
	)
}

// DonationThanks is the confirmation shown after the donate button.
func DonationThanks(h content.Hero, amount donation.Amount) g.Node {
	return P(Class("hero__thanks"), Role("status"), g.Text(ThanksText(h, amount)))
}

// ThanksText formats the confirmation for amount.
func ThanksText(h content.Hero, amount donation.Amount) string {
	format := h.ThanksFormat
	if format == "" {
		format = "%d"
	}
	return fmt.Sprintf(format, amount.Int())
}

// titleLines renders each title line on its own row and wraps the first
// occurrence of highlight in an accent span.
func titleLines(lines []string, highlight string) g.Node {
	var nodes []g.Node
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, highlightText(line, highlight))
	}
	return g.Group(nodes)
}

func highlightText(line, highlight string) g.Node {
	if highlight == "" {
		return g.Text(line)
	}
	before, after, found := strings.Cut(line, highlight)
	if !found {
		return g.Text(line)
	}
	return g.Group([]g.Node{
		g.Text(before),
		Span(Class("accent"), g.Text(highlight)),
		g.Text(after),
	})
}

func assurances(items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]g.Node, 0, len(items))
	for _, a := range items {
		nodes = append(nodes, Li(Icon("shield", "icon--sm"), g.Text(a)))
	}
	return Ul(Class("hero__assurances"), g.Group(nodes))
}

func trustStrip(items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]g.Node, 0, len(items))
	for i, t := range items {
		nodes = append(nodes, Li(Data("reveal", motion.FadeUp), Style(fmt.Sprintf("--i:%d", i+3)), Icon("check", "icon--sm"), g.Text(t)))
	}
	return Ul(Class("hero__trust"), g.Group(nodes))
}
