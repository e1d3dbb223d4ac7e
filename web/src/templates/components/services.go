package components

import (
	"fmt"
	"strconv"

	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/motion"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Services renders the offering cards and the headline counters.
func Services(s content.ServicesSection, tag language.Tag, presets motion.Table) g.Node {
	cards := make([]g.Node, 0, len(s.Items))
	for i, item := range s.Items {
		cards = append(cards, serviceCard(item, i))
	}

	return Section(
		ID("services"),
		Class("services section"),
		Div(Class("container"),
			Div(Class("section__head"), Data("reveal", motion.Section),
				g.If(s.Eyebrow != "", P(Class("eyebrow"), g.Text(Upper(tag, s.Eyebrow)))),
				H2(Class("section__title"), g.Text(s.Title)),
				g.If(s.Lead != "", P(Class("section__lead"), g.Text(s.Lead))),
			),
			Div(Class("services__grid"), g.Group(cards)),
			Stats(s.Stats, tag, presets),
			g.If(s.Transparency != "" || s.Footnote != "", P(Class("services__footnote"),
				g.If(s.Transparency != "", Strong(g.Text(s.Transparency+". "))),
				g.Text(s.Footnote),
			)),
		),
	)
}

func serviceCard(item content.Service, i int) g.Node {
	bullets := make([]g.Node, 0, len(item.Bullets))
	for _, b := range item.Bullets {
		bullets = append(bullets, Li(Icon("check", "icon--sm"), g.Text(b)))
	}
	return Article(
		Class("service-card motion-hover"),
		Data("reveal", motion.Card),
		Style(fmt.Sprintf("--i:%d", i)),
		g.If(item.Image != "", Img(Src(item.Image), Alt(""), Loading("lazy"), Class("service-card__image"))),
		g.If(item.Badge != "", Span(Class("badge"), g.Text(item.Badge))),
		Div(Class("service-card__body"),
			Icon(item.Icon, "service-card__icon"),
			H3(g.Text(item.Title)),
			P(g.Text(item.Desc)),
			g.If(len(bullets) > 0, Ul(Class("service-card__bullets"), g.Group(bullets))),
		),
	)
}

// Stats renders the counters. The markup carries the final, locale-formatted
// value so the page reads correctly without script; the data-countup
// attributes let the script animate from zero once the counter is visible.
func Stats(stats []content.Stat, tag language.Tag, presets motion.Table) g.Node {
	if len(stats) == 0 {
		return nil
	}
	duration := "1600"
	if p, ok := presets.Lookup(motion.CountUp); ok {
		duration = strconv.FormatInt(p.Duration.Milliseconds(), 10)
	}

	items := make([]g.Node, 0, len(stats))
	for i, s := range stats {
		items = append(items, Div(
			Class("stat"),
			Data("reveal", motion.FadeUp),
			Style(fmt.Sprintf("--i:%d", i)),
			Strong(
				Class("stat__value"),
				Data("countup", strconv.FormatFloat(s.Number, 'f', -1, 64)),
				Data("countup-decimals", itoa(s.Decimals)),
				Data("countup-suffix", s.Suffix),
				Data("countup-locale", tag.String()),
				Data("countup-duration", duration),
				g.Text(FormatNumber(tag, s.Number, s.Decimals)+s.Suffix),
			),
			Span(Class("stat__label"), g.Text(s.Label)),
		))
	}
	return Div(Class("stats"), g.Group(items))
}
