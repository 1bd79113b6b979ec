package sprite

import "math"

// arcQuadrant identifies which quarter of a circle a light-arc
// box-drawing glyph (U+256D-U+2570) draws: the circle's center
// (expressed as the opposite cell corner, as a fraction of cell
// width/height) and the angular sweep of the quarter it strokes.
type arcQuadrant struct {
	centerX, centerY     float64
	startAngle, endAngle float64
}

// Angle 0 points along +X; angles increase clockwise since canvas Y
// grows downward. Each glyph's circle is centered at the cell corner
// diagonally opposite the curve, with radius spanning half the cell,
// so the swept quarter is tangent to the two edges it joins.
var arcGlyphs = map[rune]arcQuadrant{
	0x256D: {centerX: 1, centerY: 1, startAngle: math.Pi, endAngle: math.Pi * 1.5},        // ╭ joins right+bottom
	0x256E: {centerX: 0, centerY: 1, startAngle: math.Pi * 1.5, endAngle: math.Pi * 2},    // ╮ joins left+bottom
	0x256F: {centerX: 0, centerY: 0, startAngle: 0, endAngle: math.Pi * 0.5},              // ╯ joins left+top
	0x2570: {centerX: 1, centerY: 0, startAngle: math.Pi * 0.5, endAngle: math.Pi},        // ╰ joins right+top
}

// supersampleFactor is the oversampling factor light arcs are rendered
// at before being box-filtered down, so the curve anti-aliases
// cleanly instead of showing stairstepping at typical cell sizes.
const supersampleFactor = 4

// drawArc renders a light-arc box-drawing glyph at 4x supersampling:
// the quarter-circle is swept as a sequence of thick line segments at
// sub-pixel resolution, then the high-resolution canvas is
// box-filtered back down to cell size.
func drawArc(c *Canvas, p Params, q arcQuadrant) {
	w := int(p.CellWidth) * supersampleFactor
	h := int(p.CellHeight) * supersampleFactor
	hi := NewCanvas(w, h)

	radius := float64(min(w, h)) / 2
	thickness := p.Thickness * supersampleFactor
	center := Point{q.centerX * float64(w), q.centerY * float64(h)}

	const steps = 64
	for i := 0; i < steps; i++ {
		t0 := q.startAngle + (q.endAngle-q.startAngle)*float64(i)/steps
		t1 := q.startAngle + (q.endAngle-q.startAngle)*float64(i+1)/steps
		p0 := Point{center.X + radius*math.Cos(t0), center.Y + radius*math.Sin(t0)}
		p1 := Point{center.X + radius*math.Cos(t1), center.Y + radius*math.Sin(t1)}
		hi.Line(p0, p1, thickness, 255)
	}

	down := hi.Downsample(supersampleFactor)
	for y := 0; y < down.Height(); y++ {
		for x := 0; x < down.Width(); x++ {
			if a := down.At(x, y); a > 0 {
				c.blend(x, y, a)
			}
		}
	}
}
