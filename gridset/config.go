// Package gridset implements SharedGridSet: a refcounted registry of
// SharedGrid instances keyed by font configuration, so multiple
// surfaces requesting the identical configuration share one grid.
package gridset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/collection"
	"github.com/zen-xu/ghostty-fontcore/face"
	"github.com/zen-xu/ghostty-fontcore/resolver"
)

// Config holds everything grid-key construction and grid assembly need
// from an embedder's font configuration. Parsing an on-disk config file
// into this struct is the embedder's job.
type Config struct {
	FontFamily           []string
	FontFamilyBold       []string
	FontFamilyItalic     []string
	FontFamilyBoldItalic []string

	FontStyle           *string
	FontStyleBold       *string
	FontStyleItalic     *string
	FontStyleBoldItalic *string

	FontSize      float64
	FontVariation []face.VariationAxis

	CodepointMap []resolver.CodepointRange

	SyntheticStyle collection.SyntheticConfig

	MetricModifiers face.MetricModifiers
	Thicken         bool

	// PreferredEmoji, when non-nil, names the platform's preferred
	// emoji font, searched before the built-in emoji fallback.
	PreferredEmoji *face.Descriptor

	// Monospace is passed through to fallback discovery as a hint;
	// true for essentially every terminal configuration.
	Monospace bool
}

// familiesFor returns the configured family list for style, and the
// per-style name override if any.
func (c Config) familiesFor(style ghosttyfont.Style) ([]string, *string) {
	switch style {
	case ghosttyfont.StyleBold:
		return c.FontFamilyBold, c.FontStyleBold
	case ghosttyfont.StyleItalic:
		return c.FontFamilyItalic, c.FontStyleItalic
	case ghosttyfont.StyleBoldItalic:
		return c.FontFamilyBoldItalic, c.FontStyleBoldItalic
	default:
		return c.FontFamily, c.FontStyle
	}
}

// Key returns a canonical string encoding of Config, used as the
// SharedGridSet map key. Keying by the full encoding makes config
// equality structural: two distinct configurations can never share a
// grid through an accidental hash collision.
func (c Config) Key() string {
	var b strings.Builder
	for _, style := range []ghosttyfont.Style{
		ghosttyfont.StyleRegular, ghosttyfont.StyleBold,
		ghosttyfont.StyleItalic, ghosttyfont.StyleBoldItalic,
	} {
		families, styleName := c.familiesFor(style)
		fmt.Fprintf(&b, "%s:%s|%s;", style, strings.Join(families, ","), derefString(styleName))
	}
	fmt.Fprintf(&b, "size:%g;variations:%s;", c.FontSize, variationKey(c.FontVariation))
	fmt.Fprintf(&b, "codepointmap:%s;", codepointMapKey(c.CodepointMap))
	fmt.Fprintf(&b, "synth:%v,%v,%v;", c.SyntheticStyle.Italic, c.SyntheticStyle.Bold, c.SyntheticStyle.BoldItalic)
	fmt.Fprintf(&b, "thicken:%v;modifiers:%s;", c.Thicken, metricModifiersKey(c.MetricModifiers))
	if c.PreferredEmoji != nil {
		fmt.Fprintf(&b, "preferredemoji:%s;", c.PreferredEmoji.Key())
	}
	fmt.Fprintf(&b, "monospace:%v", c.Monospace)
	return b.String()
}

func derefString(s *string) string {
	if s == nil {
		return "?"
	}
	return *s
}

func variationKey(vs []face.VariationAxis) string {
	sorted := append([]face.VariationAxis(nil), vs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Tag < sorted[j].Tag })
	var b strings.Builder
	for _, v := range sorted {
		fmt.Fprintf(&b, "%s=%g,", v.Tag, v.Value)
	}
	return b.String()
}

func codepointMapKey(m []resolver.CodepointRange) string {
	sorted := append([]resolver.CodepointRange(nil), m...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	var b strings.Builder
	for _, r := range sorted {
		fmt.Fprintf(&b, "%d-%d:%s,", r.Start, r.End, r.Descriptor.Key())
	}
	return b.String()
}

func modifierKey(m *face.Modifier) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf("%g%v", m.Value, m.Percent)
}

func metricModifiersKey(mm face.MetricModifiers) string {
	return strings.Join([]string{
		modifierKey(mm.CellWidth), modifierKey(mm.CellHeight), modifierKey(mm.Baseline),
		modifierKey(mm.UnderlinePosition), modifierKey(mm.UnderlineThickness),
		modifierKey(mm.StrikethroughPosition), modifierKey(mm.StrikethroughThickness),
	}, ",")
}
