package layouts

import (
	"github.com/sifiratik/fidan/internal/motion"
	"github.com/sifiratik/fidan/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PageConfig holds what the document shell needs besides the body.
type PageConfig struct {
	Title       string
	SiteName    string
	Description string
	Lang        string
	// HTMXSrc is the htmx script URL. Empty leaves htmx out, and every form
	// falls back to a plain submission.
	HTMXSrc string
	Motion  motion.Table
	Flash   view.FlashData
}

// Base renders the HTML document around the page sections.
func Base(cfg PageConfig, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(cfg.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(cfg.Title, cfg.SiteName))),
				g.If(cfg.Description != "", h.Meta(h.Name("description"), h.Content(cfg.Description))),
				h.Link(h.Rel("icon"), h.Href("/static/img/favicon.svg")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				view.Templ(motion.Stylesheet(cfg.Motion)),
				g.If(cfg.HTMXSrc != "", h.Script(h.Src(cfg.HTMXSrc), h.Defer())),
				h.Script(h.Src("/static/js/site.js"), h.Defer()),
			),
			h.Body(
				h.Class("page"),
				Flash(cfg.Flash),
				g.Group(body),
			),
		),
	)
}

// Flash renders one-shot messages left by a redirecting form post.
func Flash(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	nodes := make([]g.Node, 0, len(f.Success)+len(f.Error))
	for _, m := range f.Success {
		nodes = append(nodes, h.P(h.Class("flash flash--success"), h.Role("status"), g.Text(m)))
	}
	for _, m := range f.Error {
		nodes = append(nodes, h.P(h.Class("flash flash--error"), h.Role("alert"), g.Text(m)))
	}
	return h.Div(h.ID("flash"), h.Class("flash-stack"), g.Group(nodes))
}
