package ghosttyfont

// GlyphID is the font-internal numeric identifier for a glyph, distinct
// from the Unicode codepoint that produced it.
type GlyphID uint32

// Glyph is the rasterised placement metadata for a (face, glyph-id) pair,
// stored in a shared texture atlas.
//
// OffsetY is the top bearing expressed in the bottom-origin coordinate
// system used downstream by the renderer.
type Glyph struct {
	Width, Height    uint32
	OffsetX, OffsetY int32
	AtlasX, AtlasY   uint32
	AdvanceX         float32
}

// Metrics holds per-collection cell geometry, derived from the 'M' glyph
// of the regular face at SharedGrid init time.
type Metrics struct {
	CellWidth              float64
	CellHeight             float64
	CellBaseline           float64
	UnderlinePosition      float64
	UnderlineThickness     float64
	StrikethroughPosition  float64
	StrikethroughThickness float64
}

// RenderOptions parameterises a single RenderGlyph call. It is part of
// the glyph cache key in SharedGrid, so renderings of the same glyph
// under different options coexist in that cache even where a back-end
// ignores some option.
type RenderOptions struct {
	// Thicken doubles underline/stroke thickness where applicable.
	Thicken bool
	// MaxHeight clamps the rendered glyph height when non-zero, used to
	// keep oversized glyphs (e.g. from a fallback emoji font) within a
	// single cell.
	MaxHeight uint32
}
