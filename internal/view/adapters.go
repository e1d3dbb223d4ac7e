package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// templNode wraps a templ.Component so it can sit inside a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

// Render implements g.Node.
func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// Templ converts a templ component into a gomponents node. gomponents does
// not pass a context while rendering, so the component sees a background context.
func Templ(component templ.Component) g.Node {
	return templNode{ctx: context.Background(), component: component}
}

// TemplWithContext is Templ with an explicit render context.
func TemplWithContext(ctx context.Context, component templ.Component) g.Node {
	return templNode{ctx: ctx, component: component}
}

// Gomponent converts a gomponents node into a templ component.
func Gomponent(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
