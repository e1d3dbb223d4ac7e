package components

import (
	"fmt"

	"github.com/sifiratik/fidan/internal/content"
	"github.com/sifiratik/fidan/internal/motion"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Steps renders the numbered process.
func Steps(s content.StepsSection, tag language.Tag) g.Node {
	items := make([]g.Node, 0, len(s.Items))
	for i, step := range s.Items {
		items = append(items, Li(
			Class("step"),
			Data("reveal", motion.Card),
			Style(fmt.Sprintf("--i:%d", i)),
			Span(Class("step__number"), g.Textf("%02d", i+1)),
			Icon(step.Icon, "step__icon"),
			H3(g.Text(step.Title)),
			P(g.Text(step.Desc)),
		))
	}

	return Section(
		ID("steps"),
		Class("steps section"),
		Div(Class("container"),
			Div(Class("section__head"), Data("reveal", motion.Section),
				g.If(s.Eyebrow != "", P(Class("eyebrow"), g.Text(Upper(tag, s.Eyebrow)))),
				H2(Class("section__title"), titleLines(s.Title, "")),
			),
			Ol(Class("steps__list"), g.Group(items)),
		),
	)
}
