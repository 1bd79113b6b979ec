package sprite

// weight is a box-drawing line's stroke class: how thick, and whether
// it is actually a pair of parallel light strokes (double).
type weight int

const (
	wNone weight = iota
	wLight
	wHeavy
	wDouble
)

// sides records, for one box-drawing codepoint, which of the four
// compass directions has a line stroke leaving the cell's center, and
// at what weight.
type sides struct{ up, down, left, right weight }

// boxLines covers the solid lines, corners, tees and crosses of
// U+2500-U+254B (the dashed U+2504-U+250B are in dashLines), the
// double-line block U+2550-U+256C and the half lines U+2574-U+257F:
// each is built from the same four-direction stroke primitive, so this
// table plus drawBoxChar is the entire dispatch logic those 109 glyphs
// need.
var boxLines = map[rune]sides{
	0x2500: {left: wLight, right: wLight},
	0x2501: {left: wHeavy, right: wHeavy},
	0x2502: {up: wLight, down: wLight},
	0x2503: {up: wHeavy, down: wHeavy},

	0x250C: {down: wLight, right: wLight},
	0x250D: {down: wLight, right: wHeavy},
	0x250E: {down: wHeavy, right: wLight},
	0x250F: {down: wHeavy, right: wHeavy},
	0x2510: {down: wLight, left: wLight},
	0x2511: {down: wLight, left: wHeavy},
	0x2512: {down: wHeavy, left: wLight},
	0x2513: {down: wHeavy, left: wHeavy},
	0x2514: {up: wLight, right: wLight},
	0x2515: {up: wLight, right: wHeavy},
	0x2516: {up: wHeavy, right: wLight},
	0x2517: {up: wHeavy, right: wHeavy},
	0x2518: {up: wLight, left: wLight},
	0x2519: {up: wLight, left: wHeavy},
	0x251A: {up: wHeavy, left: wLight},
	0x251B: {up: wHeavy, left: wHeavy},

	0x251C: {up: wLight, down: wLight, right: wLight},
	0x251D: {up: wLight, down: wLight, right: wHeavy},
	0x251E: {up: wHeavy, down: wLight, right: wLight},
	0x251F: {up: wLight, down: wHeavy, right: wLight},
	0x2520: {up: wHeavy, down: wHeavy, right: wLight},
	0x2521: {up: wHeavy, down: wLight, right: wHeavy},
	0x2522: {up: wLight, down: wHeavy, right: wHeavy},
	0x2523: {up: wHeavy, down: wHeavy, right: wHeavy},
	0x2524: {up: wLight, down: wLight, left: wLight},
	0x2525: {up: wLight, down: wLight, left: wHeavy},
	0x2526: {up: wHeavy, down: wLight, left: wLight},
	0x2527: {up: wLight, down: wHeavy, left: wLight},
	0x2528: {up: wHeavy, down: wHeavy, left: wLight},
	0x2529: {up: wHeavy, down: wLight, left: wHeavy},
	0x252A: {up: wLight, down: wHeavy, left: wHeavy},
	0x252B: {up: wHeavy, down: wHeavy, left: wHeavy},

	0x252C: {down: wLight, left: wLight, right: wLight},
	0x252D: {down: wLight, left: wHeavy, right: wLight},
	0x252E: {down: wLight, left: wLight, right: wHeavy},
	0x252F: {down: wLight, left: wHeavy, right: wHeavy},
	0x2530: {down: wHeavy, left: wLight, right: wLight},
	0x2531: {down: wHeavy, left: wHeavy, right: wLight},
	0x2532: {down: wHeavy, left: wLight, right: wHeavy},
	0x2533: {down: wHeavy, left: wHeavy, right: wHeavy},
	0x2534: {up: wLight, left: wLight, right: wLight},
	0x2535: {up: wLight, left: wHeavy, right: wLight},
	0x2536: {up: wLight, left: wLight, right: wHeavy},
	0x2537: {up: wLight, left: wHeavy, right: wHeavy},
	0x2538: {up: wHeavy, left: wLight, right: wLight},
	0x2539: {up: wHeavy, left: wHeavy, right: wLight},
	0x253A: {up: wHeavy, left: wLight, right: wHeavy},
	0x253B: {up: wHeavy, left: wHeavy, right: wHeavy},

	0x253C: {up: wLight, down: wLight, left: wLight, right: wLight},
	0x253D: {up: wLight, down: wLight, left: wHeavy, right: wLight},
	0x253E: {up: wLight, down: wLight, left: wLight, right: wHeavy},
	0x253F: {up: wLight, down: wLight, left: wHeavy, right: wHeavy},
	0x2540: {up: wHeavy, down: wLight, left: wLight, right: wLight},
	0x2541: {up: wLight, down: wHeavy, left: wLight, right: wLight},
	0x2542: {up: wHeavy, down: wHeavy, left: wLight, right: wLight},
	0x2543: {up: wHeavy, down: wLight, left: wHeavy, right: wLight},
	0x2544: {up: wHeavy, down: wLight, left: wLight, right: wHeavy},
	0x2545: {up: wLight, down: wHeavy, left: wHeavy, right: wLight},
	0x2546: {up: wLight, down: wHeavy, left: wLight, right: wHeavy},
	0x2547: {up: wHeavy, down: wLight, left: wHeavy, right: wHeavy},
	0x2548: {up: wLight, down: wHeavy, left: wHeavy, right: wHeavy},
	0x2549: {up: wHeavy, down: wHeavy, left: wHeavy, right: wLight},
	0x254A: {up: wHeavy, down: wHeavy, left: wLight, right: wHeavy},
	0x254B: {up: wHeavy, down: wHeavy, left: wHeavy, right: wHeavy},

	0x2550: {left: wDouble, right: wDouble},
	0x2551: {up: wDouble, down: wDouble},
	0x2552: {down: wLight, right: wDouble},
	0x2553: {down: wDouble, right: wLight},
	0x2554: {down: wDouble, right: wDouble},
	0x2555: {down: wLight, left: wDouble},
	0x2556: {down: wDouble, left: wLight},
	0x2557: {down: wDouble, left: wDouble},
	0x2558: {up: wLight, right: wDouble},
	0x2559: {up: wDouble, right: wLight},
	0x255A: {up: wDouble, right: wDouble},
	0x255B: {up: wLight, left: wDouble},
	0x255C: {up: wDouble, left: wLight},
	0x255D: {up: wDouble, left: wDouble},
	0x255E: {up: wLight, down: wLight, right: wDouble},
	0x255F: {up: wDouble, down: wDouble, right: wLight},
	0x2560: {up: wDouble, down: wDouble, right: wDouble},
	0x2561: {up: wLight, down: wLight, left: wDouble},
	0x2562: {up: wDouble, down: wDouble, left: wLight},
	0x2563: {up: wDouble, down: wDouble, left: wDouble},
	0x2564: {down: wLight, left: wDouble, right: wDouble},
	0x2565: {down: wDouble, left: wLight, right: wLight},
	0x2566: {down: wDouble, left: wDouble, right: wDouble},
	0x2567: {up: wLight, left: wDouble, right: wDouble},
	0x2568: {up: wDouble, left: wLight, right: wLight},
	0x2569: {up: wDouble, left: wDouble, right: wDouble},
	0x256A: {up: wLight, down: wLight, left: wDouble, right: wDouble},
	0x256B: {up: wDouble, down: wDouble, left: wLight, right: wLight},
	0x256C: {up: wDouble, down: wDouble, left: wDouble, right: wDouble},

	0x2574: {left: wLight},
	0x2575: {up: wLight},
	0x2576: {right: wLight},
	0x2577: {down: wLight},
	0x2578: {left: wHeavy},
	0x2579: {up: wHeavy},
	0x257A: {right: wHeavy},
	0x257B: {down: wHeavy},
	0x257C: {left: wLight, right: wHeavy},
	0x257D: {up: wLight, down: wHeavy},
	0x257E: {left: wHeavy, right: wLight},
	0x257F: {up: wHeavy, down: wLight},
}

// dashSpec describes one of the dashed line glyphs (U+2504-U+250B,
// U+254C-U+254F): a horizontal or vertical stroke broken into
// segments equal-length gaps apart.
type dashSpec struct {
	vertical bool
	w        weight
	segments int
}

var dashLines = map[rune]dashSpec{
	0x2504: {vertical: false, w: wLight, segments: 3},
	0x2505: {vertical: false, w: wHeavy, segments: 3},
	0x2506: {vertical: true, w: wLight, segments: 3},
	0x2507: {vertical: true, w: wHeavy, segments: 3},
	0x2508: {vertical: false, w: wLight, segments: 4},
	0x2509: {vertical: false, w: wHeavy, segments: 4},
	0x250A: {vertical: true, w: wLight, segments: 4},
	0x250B: {vertical: true, w: wHeavy, segments: 4},
	0x254C: {vertical: false, w: wLight, segments: 2},
	0x254D: {vertical: false, w: wHeavy, segments: 2},
	0x254E: {vertical: true, w: wLight, segments: 2},
	0x254F: {vertical: true, w: wHeavy, segments: 2},
}

// drawDash renders a dashed stroke across the full cell extent: the
// run is split into 2n-1 alternating dash/gap slots so the glyph
// starts and ends with ink and tiles seamlessly with its neighbours.
func drawDash(c *Canvas, p Params, d dashSpec) {
	extent := float64(p.CellWidth)
	if d.vertical {
		extent = float64(p.CellHeight)
	}
	thickness := thicknessFor(d.w, p.Thickness)
	cx := float64(p.CellWidth) / 2
	cy := float64(p.CellHeight) / 2

	slots := 2*d.segments - 1
	slot := extent / float64(slots)
	for i := 0; i < slots; i += 2 {
		lo := float64(i) * slot
		hi := lo + slot
		if d.vertical {
			c.Rect(cx-thickness/2, lo, cx+thickness/2, hi, 255)
		} else {
			c.Rect(lo, cy-thickness/2, hi, cy+thickness/2, 255)
		}
	}
}

// drawDiagonal renders the diagonal glyphs U+2571-U+2573 as full-cell
// light strokes so adjacent cells join into continuous lines.
func drawDiagonal(c *Canvas, p Params, cp rune) {
	w := float64(p.CellWidth)
	h := float64(p.CellHeight)
	if cp == 0x2571 || cp == 0x2573 {
		c.Line(Point{0, h}, Point{w, 0}, p.Thickness, 255)
	}
	if cp == 0x2572 || cp == 0x2573 {
		c.Line(Point{0, 0}, Point{w, h}, p.Thickness, 255)
	}
}

// thicknessFor returns the stroke thickness in pixels for a weight,
// given the face's base light thickness.
func thicknessFor(w weight, light float64) float64 {
	switch w {
	case wHeavy:
		return light * 2
	case wDouble, wLight:
		return light
	default:
		return 0
	}
}

// drawBoxChar draws one box-drawing codepoint's strokes from the
// cell's center out to each side that has a non-none weight. Double
// strokes are drawn as two parallel light lines with a light-
// thickness gap between them, offset from center.
func drawBoxChar(c *Canvas, p Params, s sides) {
	cx := float64(p.CellWidth) / 2
	cy := float64(p.CellHeight) / 2
	light := p.Thickness

	draw := func(w weight, to Point, perp Point) {
		if w == wNone {
			return
		}
		if w != wDouble {
			c.Line(Point{cx, cy}, to, thicknessFor(w, light), 255)
			return
		}
		gap := light
		c.Line(addv(Point{cx, cy}, scalev(perp, -gap)), addv(to, scalev(perp, -gap)), light, 255)
		c.Line(addv(Point{cx, cy}, scalev(perp, gap)), addv(to, scalev(perp, gap)), light, 255)
	}

	draw(s.up, Point{cx, 0}, Point{1, 0})
	draw(s.down, Point{cx, float64(p.CellHeight)}, Point{1, 0})
	draw(s.left, Point{0, cy}, Point{0, 1})
	draw(s.right, Point{float64(p.CellWidth), cy}, Point{0, 1})
}

func addv(a, b Point) Point      { return Point{a.X + b.X, a.Y + b.Y} }
func scalev(a Point, k float64) Point { return Point{a.X * k, a.Y * k} }
