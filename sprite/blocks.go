package sprite

// fracRect is a cell-relative rectangle, each coordinate in [0, 1],
// used for the block-element and quadrant glyphs (U+2580-U+259F):
// every one of these is just a fraction of the cell filled solid or
// at a shade alpha.
type fracRect struct {
	x0, y0, x1, y1 float64
	alpha          uint8
}

// blockGlyphs covers the block elements, shade blocks and quadrants
// in U+2580-U+259F. Each entry is a list because quadrant glyphs are
// unions of up to three independent rectangles.
var blockGlyphs = map[rune][]fracRect{
	0x2580: {{0, 0, 1, 0.5, 255}},                   // upper half block
	0x2581: {{0, 7.0 / 8, 1, 1, 255}},                // lower one eighth
	0x2582: {{0, 6.0 / 8, 1, 1, 255}},                // lower one quarter
	0x2583: {{0, 5.0 / 8, 1, 1, 255}},
	0x2584: {{0, 0.5, 1, 1, 255}},                    // lower half block
	0x2585: {{0, 3.0 / 8, 1, 1, 255}},
	0x2586: {{0, 2.0 / 8, 1, 1, 255}},
	0x2587: {{0, 1.0 / 8, 1, 1, 255}},
	0x2588: {{0, 0, 1, 1, 255}},                      // full block
	0x2589: {{0, 0, 7.0 / 8, 1, 255}},                // left seven eighths
	0x258A: {{0, 0, 6.0 / 8, 1, 255}},
	0x258B: {{0, 0, 5.0 / 8, 1, 255}},
	0x258C: {{0, 0, 0.5, 1, 255}},                     // left half block
	0x258D: {{0, 0, 3.0 / 8, 1, 255}},
	0x258E: {{0, 0, 2.0 / 8, 1, 255}},
	0x258F: {{0, 0, 1.0 / 8, 1, 255}},                 // left one eighth
	0x2590: {{0.5, 0, 1, 1, 255}},                     // right half block
	0x2591: {{0, 0, 1, 1, 85}},                        // light shade (1/3)
	0x2592: {{0, 0, 1, 1, 170}},                       // medium shade (2/3)
	0x2593: {{0, 0, 1, 1, 220}},                       // dark shade
	0x2594: {{0, 0, 1, 1.0 / 8, 255}},                 // upper one eighth
	0x2595: {{7.0 / 8, 0, 1, 1, 255}},                 // right one eighth
	0x2596: {{0, 0.5, 0.5, 1, 255}},                   // quadrant lower-left
	0x2597: {{0.5, 0.5, 1, 1, 255}},                   // quadrant lower-right
	0x2598: {{0, 0, 0.5, 0.5, 255}},                   // quadrant upper-left
	0x2599: {{0, 0, 0.5, 1, 255}, {0.5, 0.5, 1, 1, 255}},
	0x259A: {{0, 0, 0.5, 0.5, 255}, {0.5, 0.5, 1, 1, 255}},
	0x259B: {{0, 0, 1, 0.5, 255}, {0, 0.5, 0.5, 1, 255}},
	0x259C: {{0, 0, 1, 0.5, 255}, {0.5, 0.5, 1, 1, 255}},
	0x259D: {{0.5, 0, 1, 0.5, 255}},                   // quadrant upper-right
	0x259E: {{0.5, 0, 1, 0.5, 255}, {0, 0.5, 0.5, 1, 255}},
	0x259F: {{0.5, 0, 1, 0.5, 255}, {0, 0.5, 1, 1, 255}},
}

func drawBlockGlyph(c *Canvas, p Params, rects []fracRect) {
	w := float64(p.CellWidth)
	h := float64(p.CellHeight)
	for _, r := range rects {
		c.Rect(r.x0*w, r.y0*h, r.x1*w, r.y1*h, r.alpha)
	}
}

// brailleDotOffsets are the cell-relative centers of the 8 dot
// positions in Unicode's 2x4 braille cell, indexed by bit (dot N is
// bit N-1 per the Unicode braille encoding).
var brailleDotOffsets = [8]Point{
	{0.25, 1.0 / 8},  // dot 1
	{0.25, 3.0 / 8},  // dot 2
	{0.25, 5.0 / 8},  // dot 3
	{0.75, 1.0 / 8},  // dot 4
	{0.75, 3.0 / 8},  // dot 5
	{0.75, 5.0 / 8},  // dot 6
	{0.25, 7.0 / 8},  // dot 7
	{0.75, 7.0 / 8},  // dot 8
}

func drawBraille(c *Canvas, p Params, cp rune) {
	mask := uint8(cp - 0x2800)
	w := float64(p.CellWidth)
	h := float64(p.CellHeight)
	radius := p.Thickness
	for bit, off := range brailleDotOffsets {
		if mask&(1<<uint(bit)) == 0 {
			continue
		}
		c.Circle(Point{off.X * w, off.Y * h}, radius, 255)
	}
}

// sextantCellOffsets are the cell-relative top-left corners and size
// of the 2x3 sextant grid's six cells, in the bit order Unicode
// assigns the Symbols for Legacy Computing sextant block.
var sextantCellOffsets = [6]fracRect{
	{0, 0, 0.5, 1.0 / 3, 255},
	{0.5, 0, 1, 1.0 / 3, 255},
	{0, 1.0 / 3, 0.5, 2.0 / 3, 255},
	{0.5, 1.0 / 3, 1, 2.0 / 3, 255},
	{0, 2.0 / 3, 0.5, 1, 255},
	{0.5, 2.0 / 3, 1, 1, 255},
}

// sextantMask maps a sextant codepoint to its 6-bit fill mask. The
// block assigns its 60 codepoints to the 6-bit fill combinations in
// ascending numeric order, skipping blank (0b000000), full
// (0b111111), and the two half-block duplicates already encoded at
// U+258C/U+2590 (0b010101 and 0b101010).
func sextantMask(cp rune) (uint8, bool) {
	if cp < 0x1FB00 || cp > 0x1FB3B {
		return 0, false
	}
	idx := int(cp - 0x1FB00)
	n := -1
	for m := 1; m < 63; m++ {
		if m == 0b010101 || m == 0b101010 {
			continue
		}
		n++
		if n == idx {
			return uint8(m), true
		}
	}
	return 0, false
}

func drawSextant(c *Canvas, p Params, mask uint8) {
	for bit, rect := range sextantCellOffsets {
		if mask&(1<<uint(bit)) == 0 {
			continue
		}
		drawBlockGlyph(c, p, []fracRect{rect})
	}
}
