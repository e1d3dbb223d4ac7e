package components

import (
	"fmt"

	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/motion"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// About renders the organisation introduction with its progress bar.
func About(a content.About, tag language.Tag) g.Node {
	bullets := make([]g.Node, 0, len(a.Bullets))
	for i, b := range a.Bullets {
		bullets = append(bullets, Li(Data("reveal", motion.FadeUp), Style(fmt.Sprintf("--i:%d", i)), Icon("check", "icon--sm"), g.Text(b)))
	}

	return Section(
		ID("about"),
		Class("about section"),
		Data("reveal", motion.Section),
		Div(Class("about__grid container"),
			Figure(Class("about__media"),
				g.If(a.Photo != "", Img(Src(a.Photo), Alt(a.PhotoAlt), Loading("lazy"))),
				g.If(a.Sticker != "", Div(Class("about__sticker"), Data("reveal", motion.Card),
					Img(Src(a.Sticker), Alt(""), Loading("lazy")),
					Strong(g.Text(a.StickerTitle)),
					Span(g.Text(a.StickerText)),
				)),
			),
			Div(Class("about__copy"),
				g.If(a.Eyebrow != "", P(Class("eyebrow"), g.Text(Upper(tag, a.Eyebrow)))),
				H2(Class("section__title"), titleLines(a.Title, "")),
				g.If(a.Lead != "", P(Class("section__lead"), g.Text(a.Lead))),
				Ul(Class("about__bullets"), g.Group(bullets)),
				progressBar(a.ProgressLabel, a.Progress),
				Div(Class("about__footer"),
					g.If(a.Person.Name != "", Div(Class("person"),
						g.If(a.Person.Photo != "", Img(Src(a.Person.Photo), Alt(a.Person.Name), Loading("lazy"))),
						Div(Strong(g.Text(a.Person.Name)), Small(g.Text(a.Person.Role))),
					)),
					g.If(a.CTA.Label != "", A(Href(a.CTA.Href), Class("btn btn--outline motion-hover"), g.Text(a.CTA.Label), Icon("arrow", "icon--sm"))),
				),
			),
		),
	)
}

// progressBar renders a percentage bar. The value is clamped to 0..100.
func progressBar(label string, value int) g.Node {
	value = min(max(value, 0), 100)
	pct := itoa(value)
	return Div(Class("progress"),
		Div(Class("progress__head"), Span(g.Text(label)), Strong(g.Text("%"+pct))),
		Div(
			Class("progress__track"),
			Role("progressbar"),
			Aria("valuemin", "0"),
			Aria("valuemax", "100"),
			Aria("valuenow", pct),
			Aria("label", label),
			Div(Class("progress__fill motion-section"), Style("width:"+pct+"%")),
		),
	)
}
