package components

import (
	"github.com/sifiratik/fidan/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Header class sets. The script swaps between them as the page scrolls past
// the threshold; the server always renders the top state.
const (
	NavClassesTop      = "site-nav site-nav--top"
	NavClassesScrolled = "site-nav site-nav--scrolled"
)

// Scrolled reports whether a vertical offset is past the header threshold.
func Scrolled(offset, threshold int) bool {
	return offset > threshold
}

// NavClasses returns the header classes for the scrolled state.
func NavClasses(scrolled bool) string {
	if scrolled {
		return NavClassesScrolled
	}
	return NavClassesTop
}

// Navbar renders the fixed site header.
func Navbar(site *content.Site) g.Node {
	links := make([]g.Node, 0, len(site.Nav.Links))
	for _, l := range site.Nav.Links {
		links = append(links, Li(A(Href(l.Href), Class("site-nav__link"), g.Text(l.Label))))
	}

	return Header(
		ID("site-nav"),
		Class(NavClasses(false)),
		Data("scroll-threshold", itoa(site.Nav.ScrollThreshold)),
		Data("class-top", NavClassesTop),
		Data("class-scrolled", NavClassesScrolled),
		Nav(
			Class("site-nav__inner container"),
			Aria("label", site.Brand.Name),
			A(Href("/"), Class("site-nav__brand"),
				g.If(site.Brand.Logo != "", Img(Src(site.Brand.Logo), Alt(site.Brand.Name), Height("40"))),
				g.If(site.Brand.Logo == "", Strong(g.Text(site.Brand.Name))),
			),
			Ul(Class("site-nav__links"), g.Group(links)),
			A(Href(site.Nav.DonateHref), Class("btn btn--primary motion-hover"), g.Text(site.Nav.DonateLabel)),
		),
	)
}
