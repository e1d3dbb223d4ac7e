package motion

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// CSS renders the table as custom properties plus reveal rules.
//
// Every preset yields --motion-<name>-{duration,delay,stagger,easing}. Presets
// with an enter offset also yield a [data-reveal="<name>"] rule that the
// viewport observer settles by adding .is-visible. Sibling order comes from the
// --i custom property set on each element.
func (t Table) CSS() string {
	var b strings.Builder

	b.WriteString(":root{")
	for _, p := range t {
		fmt.Fprintf(&b, "--motion-%s-duration:%s;", p.Name, ms(p.Duration))
		fmt.Fprintf(&b, "--motion-%s-delay:%s;", p.Name, ms(p.Delay))
		fmt.Fprintf(&b, "--motion-%s-stagger:%s;", p.Name, ms(p.Stagger))
		fmt.Fprintf(&b, "--motion-%s-easing:%s;", p.Name, p.Easing.CSS())
	}
	b.WriteString("}\n")

	for _, p := range t {
		fmt.Fprintf(&b, ".motion-%[1]s{transition-duration:var(--motion-%[1]s-duration);"+
			"transition-timing-function:var(--motion-%[1]s-easing);"+
			"transition-delay:calc(var(--motion-%[1]s-delay) + var(--i, 0) * var(--motion-%[1]s-stagger));}\n", p.Name)

		if !p.entersWithOffset() {
			continue
		}
		fmt.Fprintf(&b, "[data-reveal=%q]{opacity:0;transform:%s;filter:blur(%spx);"+
			"transition-property:opacity,transform,filter;}\n", p.Name, p.enterTransform(), num(p.Blur))
		fmt.Fprintf(&b, "[data-reveal=%q].is-visible{opacity:1;transform:none;filter:none;}\n", p.Name)
	}

	b.WriteString("@media (prefers-reduced-motion: reduce){[data-reveal]{opacity:1;transform:none;filter:none;transition:none;}}\n")
	return b.String()
}

func (p Preset) entersWithOffset() bool {
	return p.OffsetY != 0 || p.Blur != 0 || (p.Scale != 0 && p.Scale != 1)
}

func (p Preset) enterTransform() string {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	return fmt.Sprintf("translateY(%spx) scale(%s)", num(p.OffsetY), num(scale))
}

// Stylesheet renders the table inside a <style> element.
func Stylesheet(t Table) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<style id="motion-presets">`+t.CSS()+`</style>`)
		return err
	})
}
