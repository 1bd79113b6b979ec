package face

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
	"github.com/zen-xu/ghostty-fontcore/otfont"
)

// FreetypeRasterizer is the reference Rasterizer implementation, backed
// by github.com/golang/freetype/truetype and golang.org/x/image/font.
// It supports monochrome TrueType/OpenType outlines; it does not decode
// colour tables (CBDT/COLR/sbix), so HasColor/IsColorGlyph always
// report false — a real terminal would pair this with a colour-capable
// rasteriser for its emoji fallback face behind the same Rasterizer
// interface boundary.
type FreetypeRasterizer struct{}

// NewFace parses TrueType/OpenType font data and returns a Face at the
// given point size.
func (FreetypeRasterizer) NewFace(data []byte, size float64, flags RasterizerFlags) (Face, error) {
	tf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("face: %w: %v", ghosttyfont.ErrLoadFailed, err)
	}

	f := &ttFace{
		font:     tf,
		size:     size,
		flags:    flags,
		idToRune: make(map[ghosttyfont.GlyphID]rune),
	}

	// Underline and strikethrough geometry come from the post and OS/2
	// tables; a font missing them (or with a malformed directory) falls
	// back to heuristics in Metrics.
	if td, tdErr := otfont.ParseTableDirectory(data); tdErr == nil {
		if head, headErr := otfont.ParseHead(td); headErr == nil && head.UnitsPerEm > 0 {
			f.unitsPerEm = float64(head.UnitsPerEm)
		}
		if post, postErr := otfont.ParsePost(td); postErr == nil {
			f.post = &post
		}
		if os2, os2Err := otfont.ParseOS2(td); os2Err == nil {
			f.os2 = &os2
		}
	}

	f.buildGoFace()
	return f, nil
}

// ttFace adapts a *truetype.Font + golang.org/x/image/font.Face to the
// Face interface.
type ttFace struct {
	font  *truetype.Font
	size  float64
	flags RasterizerFlags

	unitsPerEm float64
	post       *otfont.Post
	os2        *otfont.OS2

	mu       sync.Mutex
	gface    font.Face
	idToRune map[ghosttyfont.GlyphID]rune
}

func (f *ttFace) buildGoFace() {
	f.gface = truetype.NewFace(f.font, &truetype.Options{
		Size:    f.size,
		Hinting: fontHinting(f.flags),
	})
}

func fontHinting(RasterizerFlags) font.Hinting {
	return font.HintingFull
}

func (f *ttFace) GlyphIndex(cp rune) (ghosttyfont.GlyphID, bool) {
	idx := f.font.Index(cp)
	if idx == 0 {
		return 0, false
	}

	f.mu.Lock()
	f.idToRune[ghosttyfont.GlyphID(idx)] = cp
	f.mu.Unlock()

	return ghosttyfont.GlyphID(idx), true
}

// IsColorGlyph always reports false: this rasterizer only decodes
// monochrome outlines.
func (f *ttFace) IsColorGlyph(ghosttyfont.GlyphID) bool { return false }

func (f *ttFace) Presentation() ghosttyfont.Presentation { return ghosttyfont.PresentationText }

func (f *ttFace) HasColor() bool { return false }

func (f *ttFace) Name() string { return "ttFace" }

// Metrics derives cell geometry from the loaded face: ascent/descent
// and the 'M' advance from the rendering face, underline geometry from
// the post table and strikethrough geometry from OS/2 where those
// tables were parseable, heuristics otherwise. Table values are in
// font units, y-up relative to the baseline; the cell coordinate
// system is pixels, y-down from the cell top.
func (f *ttFace) Metrics() ghosttyfont.Metrics {
	f.mu.Lock()
	gface := f.gface
	f.mu.Unlock()

	m := gface.Metrics()
	ascent := fixed26ToFloat64(m.Ascent)
	descent := fixed26ToFloat64(m.Descent)
	baseline := ascent

	cellWidth := fixed26ToFloat64(m.Height) * 0.6 // no 'M' in the font
	if adv, ok := gface.GlyphAdvance('M'); ok {
		cellWidth = fixed26ToFloat64(adv)
	}

	underlinePosition := baseline + descent*0.3
	underlineThickness := descent * 0.15
	strikethroughPosition := baseline * 0.4
	strikethroughThickness := descent * 0.15

	if f.unitsPerEm > 0 {
		scale := f.size / f.unitsPerEm
		if f.post != nil {
			underlinePosition = baseline - float64(f.post.UnderlinePosition)*scale
			if t := float64(f.post.UnderlineThickness) * scale; t > 0 {
				underlineThickness = t
			}
		}
		if f.os2 != nil {
			strikethroughPosition = baseline - float64(f.os2.StrikeoutPosition)*scale
			if t := float64(f.os2.StrikeoutSize) * scale; t > 0 {
				strikethroughThickness = t
			}
		}
	}

	return ghosttyfont.Metrics{
		CellWidth:              cellWidth,
		CellHeight:             ascent + descent,
		CellBaseline:           baseline,
		UnderlinePosition:      underlinePosition,
		UnderlineThickness:     underlineThickness,
		StrikethroughPosition:  strikethroughPosition,
		StrikethroughThickness: strikethroughThickness,
	}
}

func (f *ttFace) SetSize(size float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.size = size
	f.buildGoFace()
	return nil
}

// RenderGlyph rasterises the glyph into an alpha8-equivalent bitmap
// (colour fonts are out of scope for this backend) and packs it into
// the supplied atlas.
func (f *ttFace) RenderGlyph(a *atlas.Atlas, id ghosttyfont.GlyphID, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error) {
	f.mu.Lock()
	r, ok := f.idToRune[id]
	gface := f.gface
	f.mu.Unlock()
	if !ok {
		return ghosttyfont.Glyph{}, fmt.Errorf("face: glyph id %d: %w", id, ghosttyfont.ErrLoadFailed)
	}

	bounds, advance, ok := gface.GlyphBounds(r)
	if !ok {
		return ghosttyfont.Glyph{}, fmt.Errorf("face: no bounds for rune %q: %w", r, ghosttyfont.ErrLoadFailed)
	}

	width := uint32((bounds.Max.X - bounds.Min.X).Ceil())
	height := uint32((bounds.Max.Y - bounds.Min.Y).Ceil())
	if opts.MaxHeight != 0 && height > opts.MaxHeight {
		height = opts.MaxHeight
	}

	advanceX := fixed26ToFloat32(advance)
	if width == 0 || height == 0 {
		// Whitespace glyph: nothing to pack into the atlas.
		return ghosttyfont.Glyph{AdvanceX: advanceX}, nil
	}

	dot := fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y}
	imgRect, mask, maskp, _, ok := gface.Glyph(dot, r)
	if !ok {
		return ghosttyfont.Glyph{}, fmt.Errorf("face: Glyph() failed for rune %q: %w", r, ghosttyfont.ErrLoadFailed)
	}

	region, err := a.Reserve(width, height)
	if err != nil {
		return ghosttyfont.Glyph{}, err
	}

	pixels := make([]byte, int(width)*int(height))
	for y := 0; y < int(height) && y < imgRect.Dy(); y++ {
		for x := 0; x < int(width) && x < imgRect.Dx(); x++ {
			pixels[y*int(width)+x] = alphaAt(mask, maskp.X+x, maskp.Y+y)
		}
	}
	a.Write(atlas.Region{X: region.X, Y: region.Y, W: region.W, H: region.H}, pixels)

	ascentPixels := (-bounds.Min.Y).Ceil()

	return ghosttyfont.Glyph{
		Width:    width,
		Height:   height,
		OffsetX:  int32(bounds.Min.X.Floor()),
		OffsetY:  int32(ascentPixels),
		AtlasX:   region.X,
		AtlasY:   region.Y,
		AdvanceX: advanceX,
	}, nil
}

func alphaAt(img image.Image, x, y int) byte {
	c := color.AlphaModel.Convert(img.At(x, y)).(color.Alpha)
	return c.A
}

func fixed26ToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func fixed26ToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
