// Package atlas implements the mutable 2-D texture atlas glyphs are
// packed into. An Atlas never evicts; it grows (doubling) until the
// caller gives up.
package atlas

import (
	"fmt"

	"github.com/zen-xu/ghostty-fontcore"
)

// Format is the pixel format of an Atlas.
type Format uint8

const (
	// FormatGrayscale is 1 byte per pixel, used for text glyphs and
	// sprite glyphs.
	FormatGrayscale Format = iota
	// FormatBGRA is 4 bytes per pixel, used for colour emoji.
	FormatBGRA
)

// BytesPerPixel returns the pixel depth of the format, exposed so
// writers can perform stride conversion.
func (f Format) BytesPerPixel() int {
	if f == FormatBGRA {
		return 4
	}
	return 1
}

func (f Format) String() string {
	if f == FormatBGRA {
		return "bgra"
	}
	return "grayscale"
}

// Region is an opaque rectangle reserved within an Atlas.
type Region struct {
	X, Y, W, H uint32
}

// Atlas is a mutable, append-only 2-D texture. It packs Regions using a
// simple shelf allocator: rows ("shelves") are filled left to right, and
// a new shelf starts when the current one has no room. It never evicts;
// Grow enlarges the backing size (SharedGrid passes double the current
// size).
type Atlas struct {
	size   uint32
	format Format
	pixels []byte

	shelfY      uint32
	shelfHeight uint32
	cursorX     uint32
}

// New creates an empty Atlas of the given (square) size and format.
func New(size uint32, format Format) *Atlas {
	a := &Atlas{
		size:   size,
		format: format,
	}
	a.pixels = make([]byte, int(size)*int(size)*format.BytesPerPixel())
	return a
}

// Size returns the current (square) atlas dimension.
func (a *Atlas) Size() uint32 { return a.size }

// Format returns the atlas pixel format.
func (a *Atlas) Format() Format { return a.format }

// Pixels exposes the raw backing buffer, stride a.size*format.BytesPerPixel().
func (a *Atlas) Pixels() []byte { return a.pixels }

// Reserve allocates a w x h region in the atlas and returns its
// position. Returns ErrAtlasFull if there is no room; the caller (grid)
// is expected to Grow and retry.
func (a *Atlas) Reserve(w, h uint32) (Region, error) {
	if w == 0 || h == 0 {
		return Region{}, fmt.Errorf("atlas: cannot reserve a zero-sized region")
	}
	if w > a.size || h > a.size {
		return Region{}, ghosttyfont.ErrAtlasFull
	}

	if a.cursorX+w > a.size {
		// Start a new shelf below the current one.
		a.shelfY += a.shelfHeight
		a.shelfHeight = 0
		a.cursorX = 0
	}

	if a.shelfY+h > a.size {
		return Region{}, ghosttyfont.ErrAtlasFull
	}

	r := Region{X: a.cursorX, Y: a.shelfY, W: w, H: h}
	a.cursorX += w
	if h > a.shelfHeight {
		a.shelfHeight = h
	}
	return r, nil
}

// Write copies bytes into the atlas at the given region. bytes must be
// exactly r.W*r.H*Format.BytesPerPixel() long, row-major, no padding.
func (a *Atlas) Write(r Region, pixels []byte) {
	bpp := a.format.BytesPerPixel()
	want := int(r.W) * int(r.H) * bpp
	if len(pixels) != want {
		panic(fmt.Sprintf("atlas: Write got %d bytes, want %d for region %+v", len(pixels), want, r))
	}

	stride := int(a.size) * bpp
	rowBytes := int(r.W) * bpp
	for row := uint32(0); row < r.H; row++ {
		srcOff := int(row) * rowBytes
		dstOff := (int(r.Y+row))*stride + int(r.X)*bpp
		copy(a.pixels[dstOff:dstOff+rowBytes], pixels[srcOff:srcOff+rowBytes])
	}
}

// Grow enlarges the atlas to newSize, preserving existing pixel
// contents and packing state; a newSize no larger than the current
// size leaves the atlas unchanged. Previously issued Regions remain valid (their
// coordinates are unchanged; only the backing buffer's stride grows).
func (a *Atlas) Grow(newSize uint32) {
	if newSize <= a.size {
		return
	}

	bpp := a.format.BytesPerPixel()
	next := make([]byte, int(newSize)*int(newSize)*bpp)

	oldStride := int(a.size) * bpp
	newStride := int(newSize) * bpp
	for row := uint32(0); row < a.size; row++ {
		srcOff := int(row) * oldStride
		dstOff := int(row) * newStride
		copy(next[dstOff:dstOff+oldStride], a.pixels[srcOff:srcOff+oldStride])
	}

	a.pixels = next
	a.size = newSize
}

// Clear zeroes the atlas contents and resets the shelf allocator. The
// atlas is never cleared automatically; callers tear down and rebuild
// a SharedGrid instead of clearing its atlases in place.
func (a *Atlas) Clear() {
	for i := range a.pixels {
		a.pixels[i] = 0
	}
	a.shelfY = 0
	a.shelfHeight = 0
	a.cursorX = 0
}
