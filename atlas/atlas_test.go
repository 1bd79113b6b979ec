package atlas

import (
	"errors"
	"testing"

	"github.com/zen-xu/ghostty-fontcore"
)

func TestReserveAndWrite(t *testing.T) {
	a := New(64, FormatGrayscale)

	r, err := a.Reserve(8, 8)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	pixels := make([]byte, 8*8)
	for i := range pixels {
		pixels[i] = 0xFF
	}
	a.Write(r, pixels)

	stride := int(a.Size())
	for y := uint32(0); y < 8; y++ {
		for x := uint32(0); x < 8; x++ {
			idx := int(r.Y+y)*stride + int(r.X+x)
			if a.Pixels()[idx] != 0xFF {
				t.Fatalf("pixel at (%d,%d) = %d, want 0xFF", r.X+x, r.Y+y, a.Pixels()[idx])
			}
		}
	}
}

func TestReserveAtlasFull(t *testing.T) {
	a := New(8, FormatGrayscale)

	if _, err := a.Reserve(8, 8); err != nil {
		t.Fatalf("first reserve should fit exactly: %v", err)
	}
	if _, err := a.Reserve(1, 1); !errors.Is(err, ghosttyfont.ErrAtlasFull) {
		t.Fatalf("second reserve should fail with ErrAtlasFull, got %v", err)
	}
}

// TestGrowDoublesAndPreservesContent shrinks the atlas so a second
// glyph doesn't fit, grows it, and expects the second reserve to
// succeed with the original content intact.
func TestGrowDoublesAndPreservesContent(t *testing.T) {
	a := New(8, FormatGrayscale)

	r1, err := a.Reserve(8, 4)
	if err != nil {
		t.Fatalf("Reserve 1: %v", err)
	}
	a.Write(r1, bytes(8*4, 0x11))

	if _, err := a.Reserve(8, 8); !errors.Is(err, ghosttyfont.ErrAtlasFull) {
		t.Fatalf("expected ErrAtlasFull before growing, got %v", err)
	}

	oldSize := a.Size()
	a.Grow(oldSize * 2)
	if a.Size() < oldSize*2 {
		t.Fatalf("Grow should at least double size: got %d, want >= %d", a.Size(), oldSize*2)
	}

	r2, err := a.Reserve(8, 8)
	if err != nil {
		t.Fatalf("Reserve after grow: %v", err)
	}
	a.Write(r2, bytes(8*8, 0x22))

	// Original content at r1 must survive the grow.
	stride := int(a.Size())
	for y := uint32(0); y < r1.H; y++ {
		for x := uint32(0); x < r1.W; x++ {
			idx := int(r1.Y+y)*stride + int(r1.X+x)
			if a.Pixels()[idx] != 0x11 {
				t.Fatalf("original content lost after grow at (%d,%d)", r1.X+x, r1.Y+y)
			}
		}
	}
}

func TestFormatBytesPerPixel(t *testing.T) {
	if FormatGrayscale.BytesPerPixel() != 1 {
		t.Fatal("grayscale should be 1 byte per pixel")
	}
	if FormatBGRA.BytesPerPixel() != 4 {
		t.Fatal("bgra should be 4 bytes per pixel")
	}
}

func bytes(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
