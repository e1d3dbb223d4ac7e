// Package motion holds the named animation presets of the site.
//
// Timing and easing are data: components refer to a preset by name and the
// stylesheet emitted by Stylesheet turns the table into CSS custom properties
// and reveal rules. Nothing here affects logical state.
package motion

import (
	"fmt"
	"strconv"
	"time"
)

// CubicBezier is a CSS cubic-bezier timing function.
type CubicBezier [4]float64

// CSS returns the cubic-bezier() expression.
func (c CubicBezier) CSS() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", num(c[0]), num(c[1]), num(c[2]), num(c[3]))
}

var (
	// Brand is the easing curve used across the site.
	Brand = CubicBezier{0.22, 1, 0.36, 1}
	// EaseOutCubic matches 1-(1-p)^3, used by the stat counters.
	EaseOutCubic = CubicBezier{0.33, 1, 0.68, 1}
	// EaseInOut is the standard ease-in-out curve.
	EaseInOut = CubicBezier{0.42, 0, 0.58, 1}
)

// Preset is a named transition: how long, after what delay, with which curve,
// and from which offset an element enters. Stagger is added per sibling index
// when a group reveals together. The settled state is always opacity 1 with no
// transform and no blur.
type Preset struct {
	Name     string
	Duration time.Duration
	Delay    time.Duration
	Stagger  time.Duration
	Easing   CubicBezier
	OffsetY  float64
	Scale    float64
	Blur     float64
}

// Preset names used by the components.
const (
	Section    = "section"
	FadeUp     = "fade-up"
	Card       = "card"
	FAQCard    = "faq-card"
	FAQContent = "faq-content"
	FAQIcon    = "faq-icon"
	FAQAccent  = "faq-accent"
	CountUp    = "countup"
	Hover      = "hover"
)

// Table is an ordered set of presets.
type Table []Preset

// Default is the preset table of the site.
var Default = Table{
	{Name: Section, Duration: 600 * time.Millisecond, Easing: Brand, OffsetY: 14, Blur: 2},
	{Name: FadeUp, Duration: 550 * time.Millisecond, Stagger: 60 * time.Millisecond, Easing: Brand, OffsetY: 20, Blur: 4},
	{Name: Card, Duration: 350 * time.Millisecond, Delay: 60 * time.Millisecond, Stagger: 80 * time.Millisecond, Easing: Brand, OffsetY: 12, Scale: 0.985},
	{Name: FAQCard, Duration: 250 * time.Millisecond, Easing: Brand},
	{Name: FAQContent, Duration: 280 * time.Millisecond, Easing: Brand},
	{Name: FAQIcon, Duration: 200 * time.Millisecond, Easing: Brand},
	{Name: FAQAccent, Duration: 280 * time.Millisecond, Easing: Brand},
	{Name: CountUp, Duration: 1600 * time.Millisecond, Easing: EaseOutCubic},
	{Name: Hover, Duration: 300 * time.Millisecond, Easing: EaseInOut},
}

// Lookup finds a preset by name.
func (t Table) Lookup(name string) (Preset, bool) {
	for _, p := range t {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Validate checks that names are unique and timings are non-negative.
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t))
	for _, p := range t {
		if p.Name == "" {
			return fmt.Errorf("motion preset with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate motion preset %q", p.Name)
		}
		seen[p.Name] = true
		if p.Duration < 0 || p.Delay < 0 || p.Stagger < 0 {
			return fmt.Errorf("motion preset %q has a negative timing", p.Name)
		}
	}
	return nil
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
