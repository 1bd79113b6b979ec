// Package sprite implements the procedural face: box-drawing, block,
// shade, quadrant, Braille, sextant and arc glyphs synthesised from a
// parameterised 2-D drawing kernel rather than loaded from a font
// file. The kernel here is a from-scratch single-channel (alpha8)
// software rasterizer — a plain byte buffer plus scanline fill —
// specialised down to the handful of primitives a sprite glyph ever
// needs: filled rects, triangles, quads and stroked lines with round
// caps. There is no path/bezier layer because no sprite glyph's
// geometry requires one.
package sprite

import "math"

// Canvas is a scratch alpha8 (one byte per pixel) drawing surface
// sized to a single cell, into which one glyph's geometry is
// rasterised before being copied into the shared atlas.
type Canvas struct {
	width, height int
	pixels        []uint8
}

// NewCanvas allocates a cleared w×h alpha8 canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{width: w, height: h, pixels: make([]uint8, w*h)}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pixels returns the raw alpha8 buffer, row-major, no padding.
func (c *Canvas) Pixels() []uint8 { return c.pixels }

// At returns the alpha value at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.pixels[y*c.width+x]
}

// blend writes the max of the existing and new alpha at (x, y) —
// sprite glyphs never need source-over blending between overlapping
// primitives, only a union of coverage.
func (c *Canvas) blend(x, y int, a uint8) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	i := y*c.width + x
	if a > c.pixels[i] {
		c.pixels[i] = a
	}
}

// Point is a 2-D coordinate in canvas pixel space.
type Point struct{ X, Y float64 }

// Rect fills the axis-aligned rectangle [x0,x1)×[y0,y1) at alpha a.
// Coordinates are clamped to the canvas bounds.
func (c *Canvas) Rect(x0, y0, x1, y1 float64, a uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	minX := int(math.Floor(x0))
	maxX := int(math.Ceil(x1))
	minY := int(math.Floor(y0))
	maxY := int(math.Ceil(y1))
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			c.blend(x, y, a)
		}
	}
}

// ClearRect forces every pixel in [x0,x1)×[y0,y1) to fully
// transparent, regardless of what was already drawn there — unlike
// Rect/Triangle/Quad/Line, which only ever raise coverage. Used to
// punch a hollow interior out of a filled shape (e.g. the hollow
// cursor box).
func (c *Canvas) ClearRect(x0, y0, x1, y1 float64) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	minX := int(math.Floor(x0))
	maxX := int(math.Ceil(x1))
	minY := int(math.Floor(y0))
	maxY := int(math.Ceil(y1))
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			if x < 0 || y < 0 || x >= c.width || y >= c.height {
				continue
			}
			c.pixels[y*c.width+x] = 0
		}
	}
}

// Triangle fills the triangle p0,p1,p2 at alpha a using the standard
// edge-function (barycentric sign) test.
func (c *Canvas) Triangle(p0, p1, p2 Point, a uint8) {
	minX := int(math.Floor(min3(p0.X, p1.X, p2.X)))
	maxX := int(math.Ceil(max3(p0.X, p1.X, p2.X)))
	minY := int(math.Floor(min3(p0.Y, p1.Y, p2.Y)))
	maxY := int(math.Ceil(max3(p0.Y, p1.Y, p2.Y)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{float64(x) + 0.5, float64(y) + 0.5}
			if pointInTriangle(p, p0, p1, p2) {
				c.blend(x, y, a)
			}
		}
	}
}

// Quad fills the convex quadrilateral p0,p1,p2,p3 (in winding order)
// at alpha a by splitting it into two triangles.
func (c *Canvas) Quad(p0, p1, p2, p3 Point, a uint8) {
	c.Triangle(p0, p1, p2, a)
	c.Triangle(p0, p2, p3, a)
}

// Line strokes a round-capped segment from p0 to p1 of the given
// thickness at alpha a: a quad for the body plus a filled disc of
// half the thickness at each endpoint to round the cap.
func (c *Canvas) Line(p0, p1 Point, thickness float64, a uint8) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.circle(p0, thickness/2, a)
		return
	}

	nx := -dy / length * thickness / 2
	ny := dx / length * thickness / 2

	a0 := Point{p0.X + nx, p0.Y + ny}
	a1 := Point{p0.X - nx, p0.Y - ny}
	b0 := Point{p1.X + nx, p1.Y + ny}
	b1 := Point{p1.X - nx, p1.Y - ny}
	c.Quad(a0, b0, b1, a1, a)

	c.circle(p0, thickness/2, a)
	c.circle(p1, thickness/2, a)
}

// circle fills a disc of the given radius centered at p, used for
// round line caps and Braille dots.
func (c *Canvas) circle(p Point, radius float64, a uint8) {
	if radius <= 0 {
		return
	}
	minX := int(math.Floor(p.X - radius))
	maxX := int(math.Ceil(p.X + radius))
	minY := int(math.Floor(p.Y - radius))
	maxY := int(math.Ceil(p.Y + radius))
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			if (px-p.X)*(px-p.X)+(py-p.Y)*(py-p.Y) <= r2 {
				c.blend(x, y, a)
			}
		}
	}
}

// Circle fills a disc at p with the given radius and alpha; exported
// for dispatch functions that draw standalone dots (Braille, cursor
// glyphs) rather than line caps.
func (c *Canvas) Circle(p Point, radius float64, a uint8) {
	c.circle(p, radius, a)
}

// Invert replaces every pixel's alpha with 255-alpha, for glyphs
// defined as "everything except this shape". (The hollow cursor box
// uses ClearRect instead.)
func (c *Canvas) Invert() {
	for i, v := range c.pixels {
		c.pixels[i] = 255 - v
	}
}

// Clear resets every pixel to fully transparent.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = 0
	}
}

// Downsample box-filters a canvas that is factor× the target
// resolution in both dimensions down to width×height. Used for the
// 4x-supersampled rendering of light arc glyphs.
func (c *Canvas) Downsample(factor int) *Canvas {
	w := c.width / factor
	h := c.height / factor
	out := NewCanvas(w, h)
	area := factor * factor
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int
			for sy := 0; sy < factor; sy++ {
				for sx := 0; sx < factor; sx++ {
					sum += int(c.At(x*factor+sx, y*factor+sy))
				}
			}
			out.pixels[y*w+x] = uint8(sum / area)
		}
	}
	return out
}

// Pad returns a copy of c surrounded by n pixels of transparent
// border on every side, avoiding bleed during bilinear atlas sampling.
func (c *Canvas) Pad(n int) *Canvas {
	out := NewCanvas(c.width+2*n, c.height+2*n)
	for y := 0; y < c.height; y++ {
		copy(out.pixels[(y+n)*out.width+n:(y+n)*out.width+n+c.width], c.pixels[y*c.width:(y+1)*c.width])
	}
	return out
}

func pointInTriangle(p, a, b, c Point) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
