package motion

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	require.NoError(t, Default.Validate())

	for _, name := range []string{Section, FadeUp, Card, FAQCard, FAQContent, FAQIcon, FAQAccent, CountUp, Hover} {
		_, ok := Default.Lookup(name)
		assert.True(t, ok, "preset %q should be defined", name)
	}

	countUp, _ := Default.Lookup(CountUp)
	assert.Equal(t, 1600*time.Millisecond, countUp.Duration)
	assert.Equal(t, EaseOutCubic, countUp.Easing)
}

func TestTable_Validate(t *testing.T) {
	t.Run("duplicate names", func(t *testing.T) {
		table := Table{{Name: "a"}, {Name: "a"}}
		assert.ErrorContains(t, table.Validate(), "duplicate")
	})

	t.Run("negative timing", func(t *testing.T) {
		table := Table{{Name: "a", Delay: -time.Millisecond}}
		assert.ErrorContains(t, table.Validate(), "negative")
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Error(t, Table{{}}.Validate())
	})
}

func TestCubicBezier_CSS(t *testing.T) {
	assert.Equal(t, "cubic-bezier(0.22, 1, 0.36, 1)", Brand.CSS())
}

func TestTable_CSS(t *testing.T) {
	css := Default.CSS()

	for _, p := range Default {
		assert.Contains(t, css, "--motion-"+p.Name+"-duration:")
		assert.Contains(t, css, ".motion-"+p.Name+"{")
	}

	assert.Contains(t, css, "--motion-section-duration:600ms;")
	assert.Contains(t, css, "--motion-section-easing:cubic-bezier(0.22, 1, 0.36, 1);")
	assert.Contains(t, css, `[data-reveal="card"]{opacity:0;transform:translateY(12px) scale(0.985);filter:blur(0px);`)
	assert.Contains(t, css, `[data-reveal="fade-up"].is-visible{`)
	assert.NotContains(t, css, `[data-reveal="faq-icon"]`, "presets without an enter offset have no reveal rule")
	assert.Contains(t, css, "prefers-reduced-motion")
}

func TestStylesheet(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Stylesheet(Default).Render(context.Background(), &buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, `<style id="motion-presets">`))
	assert.True(t, strings.HasSuffix(html, `</style>`))
}
