package sprite

import (
	"fmt"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
)

// privateUseBase starts a range of synthetic codepoints strictly
// above the valid Unicode scalar range (max U+10FFFF): internal-only
// identifiers for underline and cursor shapes the resolver never
// hands out for real text, only synthesises at render time when the
// grid is asked to draw a decoration glyph.
const privateUseBase rune = 0x110000

const (
	CodepointUnderlineSingle rune = privateUseBase + iota
	CodepointUnderlineDouble
	CodepointUnderlineDotted
	CodepointUnderlineDashed
	CodepointUnderlineCurly
	CodepointCursorBlock
	CodepointCursorBlockHollow
	CodepointCursorBar
	CodepointCursorUnderline
)

// Params holds the geometry the procedural face draws every glyph
// against: the cell's pixel dimensions plus the base ("light") stroke
// thickness and the underline's position/thickness, all computed by
// the grid from the primary face's metrics at init.
type Params struct {
	CellWidth, CellHeight uint32
	Thickness             float64
	UnderlinePosition     float64
	UnderlineThickness    float64
}

// Face is the procedural face: it never loads font data, it draws.
type Face struct {
	params Params
}

// NewFace builds a sprite Face from the grid-computed geometry.
func NewFace(p Params) *Face {
	return &Face{params: p}
}

// HasCodepoint reports whether cp is one of the ranges this face
// synthesises glyphs for. Presentation, if given, must not be emoji:
// the sprite face only ever produces monochrome glyphs.
func (f *Face) HasCodepoint(cp rune, p *ghosttyfont.Presentation) bool {
	if p != nil && *p == ghosttyfont.PresentationEmoji {
		return false
	}
	return inRange(cp)
}

func inRange(cp rune) bool {
	switch {
	case cp >= 0x2500 && cp <= 0x259F:
		return true
	case cp >= 0x2800 && cp <= 0x28FF:
		return true
	case cp >= 0x1FB00 && cp <= 0x1FB3B:
		return true
	case cp >= privateUseBase:
		return true
	}
	return false
}

// Metrics reports the face's cell geometry, mirroring a loaded Face's
// Metrics so a SpriteFace can stand in wherever one is expected.
func (f *Face) Metrics() ghosttyfont.Metrics {
	return ghosttyfont.Metrics{
		CellWidth:          float64(f.params.CellWidth),
		CellHeight:         float64(f.params.CellHeight),
		CellBaseline:       float64(f.params.CellHeight),
		UnderlinePosition:  f.params.UnderlinePosition,
		UnderlineThickness: f.params.UnderlineThickness,
	}
}

// RenderGlyph draws cp into a scratch alpha8 canvas sized to the
// cell, pads it by 1px of transparency on every side (avoiding bleed
// during bilinear atlas sampling) and copies it into the atlas. The
// padding is atlas-internal: the returned Glyph reports the unpadded
// cell rectangle, with AtlasX/AtlasY pointing inside the padding.
// OffsetY is fixed at the cell height because the grid's coordinate
// system is bottom-origin.
func (f *Face) RenderGlyph(a *atlas.Atlas, cp rune, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error) {
	params := f.params
	if opts.Thicken {
		params.Thickness *= 2
		params.UnderlineThickness *= 2
	}

	canvas := NewCanvas(int(params.CellWidth), int(params.CellHeight))
	if !f.draw(canvas, params, cp) {
		return ghosttyfont.Glyph{}, fmt.Errorf("sprite: codepoint %U: %w", cp, ghosttyfont.ErrLoadFailed)
	}

	padded := canvas.Pad(1)
	region, err := a.Reserve(uint32(padded.Width()), uint32(padded.Height()))
	if err != nil {
		return ghosttyfont.Glyph{}, err
	}
	a.Write(atlas.Region{X: region.X, Y: region.Y, W: region.W, H: region.H}, padded.Pixels())

	return ghosttyfont.Glyph{
		Width:    params.CellWidth,
		Height:   params.CellHeight,
		OffsetX:  0,
		OffsetY:  int32(params.CellHeight),
		AtlasX:   region.X + 1,
		AtlasY:   region.Y + 1,
		AdvanceX: float32(params.CellWidth),
	}, nil
}

// draw is the dispatch table: it routes cp to whichever drawing
// primitives compose its glyph. It returns false for codepoints
// outside every sprite range.
func (f *Face) draw(c *Canvas, p Params, cp rune) bool {
	if s, ok := boxLines[cp]; ok {
		drawBoxChar(c, p, s)
		return true
	}
	if d, ok := dashLines[cp]; ok {
		drawDash(c, p, d)
		return true
	}
	if cp >= 0x2571 && cp <= 0x2573 {
		drawDiagonal(c, p, cp)
		return true
	}
	if rects, ok := blockGlyphs[cp]; ok {
		drawBlockGlyph(c, p, rects)
		return true
	}
	if q, ok := arcGlyphs[cp]; ok {
		drawArc(c, p, q)
		return true
	}
	if cp >= 0x2800 && cp <= 0x28FF {
		drawBraille(c, p, cp)
		return true
	}
	if mask, ok := sextantMask(cp); ok {
		drawSextant(c, p, mask)
		return true
	}
	if drawDecoration(c, p, cp) {
		return true
	}
	return false
}
