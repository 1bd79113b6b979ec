package sprite

import "math"

// drawDecoration draws the internal-only underline/cursor glyphs
// (privateUseBase and above). These codepoints are never produced by
// text; the grid synthesises them directly when asked to render a
// decoration.
func drawDecoration(c *Canvas, p Params, cp rune) bool {
	w := float64(p.CellWidth)
	h := float64(p.CellHeight)
	thickness := p.UnderlineThickness
	if thickness <= 0 {
		thickness = p.Thickness
	}
	y := p.UnderlinePosition

	switch cp {
	case CodepointUnderlineSingle:
		c.Rect(0, y, w, y+thickness, 255)
	case CodepointUnderlineDouble:
		gap := thickness
		c.Rect(0, y, w, y+thickness, 255)
		c.Rect(0, y+thickness+gap, w, y+2*thickness+gap, 255)
	case CodepointUnderlineDotted:
		dot := thickness * 2
		for x := 0.0; x < w; x += dot * 2 {
			c.Rect(x, y, x+dot, y+thickness, 255)
		}
	case CodepointUnderlineDashed:
		dash := w / 6
		for x := 0.0; x < w; x += dash * 2 {
			c.Rect(x, y, x+dash, y+thickness, 255)
		}
	case CodepointUnderlineCurly:
		amplitude := thickness * 1.5
		period := w / 2
		const steps = 16
		for i := 0; i < steps; i++ {
			x0 := w * float64(i) / steps
			x1 := w * float64(i+1) / steps
			y0 := y + amplitude*math.Sin(2*math.Pi*x0/period)
			y1 := y + amplitude*math.Sin(2*math.Pi*x1/period)
			c.Line(Point{x0, y0}, Point{x1, y1}, thickness, 255)
		}
	case CodepointCursorBlock:
		c.Rect(0, 0, w, h, 255)
	case CodepointCursorBlockHollow:
		border := p.Thickness
		c.Rect(0, 0, w, h, 255)
		c.ClearRect(border, border, w-border, h-border)
	case CodepointCursorBar:
		c.Rect(0, 0, p.Thickness, h, 255)
	case CodepointCursorUnderline:
		c.Rect(0, h-thickness, w, h, 255)
	default:
		return false
	}
	return true
}
