// Package face defines the Face/DeferredFace contracts consumed by
// Collection and CodepointResolver, plus the Rasterizer boundary those
// contracts are built on. The rasteriser back-end itself stays
// external; only the shape of its API lives here.
package face

import (
	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
)

// RasterizerFlags carries back-end-specific hinting/rendering flags
// opaque to this package; a concrete Rasterizer interprets them.
type RasterizerFlags uint32

// MetricModifiers are the optional absolute/percentage adjustments a
// Collection's LoadOptions may carry, mirroring the adjust-* keys of
// the consumed configuration. A nil *Modifier means "no adjustment"; a
// non-nil one is either
// an absolute value (Percent == false) or a percentage of the original
// metric (Percent == true).
type MetricModifiers struct {
	CellWidth              *Modifier
	CellHeight             *Modifier
	Baseline               *Modifier
	UnderlinePosition      *Modifier
	UnderlineThickness     *Modifier
	StrikethroughPosition  *Modifier
	StrikethroughThickness *Modifier
}

// Modifier is one adjust-* value: either an absolute replacement or a
// percentage multiplier of the font-reported metric.
type Modifier struct {
	Value   float64
	Percent bool
}

// Apply returns the adjusted metric value given the font-reported
// original.
func (m *Modifier) Apply(original float64) float64 {
	if m == nil {
		return original
	}
	if m.Percent {
		return original * (m.Value / 100)
	}
	return m.Value
}

// LoadOptions is required whenever a Collection holds any Deferred
// entry, since promoting one to a Face needs a Rasterizer, a size and
// the metric/rasterization configuration to build it with.
type LoadOptions struct {
	Rasterizer      Rasterizer
	Size            float64
	MetricModifiers MetricModifiers
	RasterizerFlags RasterizerFlags
}

// Face is a single loaded font at a fixed size.
type Face interface {
	// GlyphIndex returns the font-internal glyph id for cp, if present.
	GlyphIndex(cp rune) (ghosttyfont.GlyphID, bool)
	// IsColorGlyph reports whether a specific glyph id is a colour
	// glyph. This is per-glyph because a single face may mix monochrome
	// and colour glyphs (e.g. a text-emoji font).
	IsColorGlyph(id ghosttyfont.GlyphID) bool
	// RenderGlyph rasterises glyph id into atlas-space, returning its
	// placement metadata. Implementations return ghosttyfont.ErrAtlasFull
	// when the supplied atlas has no room, and the caller (SharedGrid)
	// is expected to grow and retry exactly once.
	RenderGlyph(a *atlas.Atlas, id ghosttyfont.GlyphID, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error)
	// Presentation is the face's overall presentation classification,
	// used when a face has no per-glyph colour distinction.
	Presentation() ghosttyfont.Presentation
	// HasColor reports whether the face carries any colour glyph.
	HasColor() bool
	// Metrics returns the face's cell geometry at its loaded size.
	Metrics() ghosttyfont.Metrics
	// SetSize resizes the face in place, used by Collection.SetSize.
	SetSize(size float64) error
	// Name returns a human-readable name, for logging only.
	Name() string
}

// SyntheticBolder is an optional capability a Face may implement: the
// rasteriser backing it can synthesize a bold variant without a
// distinct font file. Collection's style completion type-asserts for
// this instead of relying on a build tag, so the capability is tested
// at construction against the rasteriser actually in use.
type SyntheticBolder interface {
	SyntheticBold(opts RasterizerFlags) (Face, bool)
}

// SyntheticItaliciser is the italic analogue of SyntheticBolder.
type SyntheticItaliciser interface {
	SyntheticItalic(opts RasterizerFlags) (Face, bool)
}

// Rasterizer is the process-wide font-rendering library handle. A
// SharedGridSet holds exactly one and passes it by value into every
// Collection it builds.
type Rasterizer interface {
	// NewFace parses font data and returns a Face at the given size.
	NewFace(data []byte, size float64, flags RasterizerFlags) (Face, error)
}
