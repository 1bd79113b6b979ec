package sprite

import (
	"testing"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
)

func testParams() Params {
	return Params{
		CellWidth:          18,
		CellHeight:         36,
		Thickness:          2,
		UnderlinePosition:  30,
		UnderlineThickness: 2,
	}
}

func TestHasCodepointRanges(t *testing.T) {
	f := NewFace(testParams())

	covered := []rune{0x2500, 0x2580, 0x2591, 0x28FF, 0x1FB00, CodepointUnderlineSingle}
	for _, cp := range covered {
		if !f.HasCodepoint(cp, nil) {
			t.Errorf("expected codepoint %U to be covered", cp)
		}
	}

	if f.HasCodepoint('A', nil) {
		t.Fatal("sprite face must not claim ordinary text codepoints")
	}

	emoji := ghosttyfont.PresentationEmoji
	if f.HasCodepoint(0x2500, &emoji) {
		t.Fatal("sprite face must never claim emoji presentation")
	}
}

// TestRenderGlyphBoxDrawing renders a box-drawing codepoint through
// the sprite face and checks the glyph's placement matches the cell
// geometry.
func TestRenderGlyphBoxDrawing(t *testing.T) {
	f := NewFace(testParams())
	a := atlas.New(64, atlas.FormatGrayscale)

	g, err := f.RenderGlyph(a, 0x2500, ghosttyfont.RenderOptions{})
	if err != nil {
		t.Fatalf("RenderGlyph: %v", err)
	}
	if g.Width != 18 || g.Height != 36 {
		t.Fatalf("glyph dims = %dx%d, want the unpadded cell 18x36", g.Width, g.Height)
	}
	if g.OffsetY != 36 {
		t.Fatalf("OffsetY = %d, want cell height 36", g.OffsetY)
	}
	if g.AtlasX != 1 || g.AtlasY != 1 {
		t.Fatalf("atlas origin = (%d,%d), want (1,1) inside the bleed padding", g.AtlasX, g.AtlasY)
	}
}

func TestRenderGlyphUnsupportedCodepoint(t *testing.T) {
	f := NewFace(testParams())
	a := atlas.New(64, atlas.FormatGrayscale)

	_, err := f.RenderGlyph(a, 'A', ghosttyfont.RenderOptions{})
	if err == nil {
		t.Fatal("expected an error rendering a non-sprite codepoint")
	}
}

func TestBrailleDotDecoding(t *testing.T) {
	c := NewCanvas(18, 36)
	drawBraille(c, testParams(), 0x2800+0x01) // dot 1 only: top-left

	if c.At(4, 4) == 0 {
		t.Fatal("expected dot 1 to paint near the top-left of the cell")
	}
	if c.At(13, 30) != 0 {
		t.Fatal("did not expect paint near the bottom-right for a dot-1-only pattern")
	}
}

// TestRenderEveryClaimedCodepoint walks every codepoint HasCodepoint
// claims and renders it, so a range claimed by inRange but missing
// from the dispatch tables fails loudly instead of surfacing as a
// blank cell at runtime.
func TestRenderEveryClaimedCodepoint(t *testing.T) {
	f := NewFace(testParams())

	ranges := [][2]rune{
		{0x2500, 0x259F},
		{0x2800, 0x28FF},
		{0x1FB00, 0x1FB3B},
		{CodepointUnderlineSingle, CodepointCursorUnderline},
	}
	for _, r := range ranges {
		for cp := r[0]; cp <= r[1]; cp++ {
			a := atlas.New(128, atlas.FormatGrayscale)
			if _, err := f.RenderGlyph(a, cp, ghosttyfont.RenderOptions{}); err != nil {
				t.Errorf("RenderGlyph(%U): %v", cp, err)
			}
		}
	}
}

func TestSextantMaskEnumeration(t *testing.T) {
	seen := make(map[uint8]bool)
	for cp := rune(0x1FB00); cp <= 0x1FB3B; cp++ {
		mask, ok := sextantMask(cp)
		if !ok {
			t.Fatalf("expected %U to map to a sextant mask", cp)
		}
		if mask == 0 || mask == 63 {
			t.Fatalf("%U mapped to a blank/full mask %d, which should be skipped", cp, mask)
		}
		if seen[mask] {
			t.Fatalf("mask %d assigned to more than one codepoint", mask)
		}
		seen[mask] = true
	}
}

func TestBoxLinesCross(t *testing.T) {
	c := NewCanvas(18, 36)
	drawBoxChar(c, testParams(), boxLines[0x253C])

	if c.At(9, 18) == 0 {
		t.Fatal("expected the light cross to paint through the cell center")
	}
}

func TestDrawDecorationCursorHollow(t *testing.T) {
	c := NewCanvas(18, 36)
	if !drawDecoration(c, testParams(), CodepointCursorBlockHollow) {
		t.Fatal("expected hollow cursor to be a recognised decoration")
	}
	if c.At(0, 0) == 0 {
		t.Fatal("expected hollow cursor border to be painted")
	}
	if c.At(9, 18) != 0 {
		t.Fatal("expected hollow cursor interior to be cleared")
	}
}
