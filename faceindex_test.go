package ghosttyfont

import (
	"testing"
	"unsafe"
)

func TestFaceIndexPacking(t *testing.T) {
	cases := []struct {
		style Style
		idx   int
	}{
		{StyleRegular, 0},
		{StyleBold, 1},
		{StyleItalic, 1000},
		{StyleBoldItalic, SpecialStart - 1},
	}

	for _, c := range cases {
		fi := NewFaceIndex(c.style, c.idx)
		if got := fi.Style(); got != c.style {
			t.Errorf("Style() = %v, want %v", got, c.style)
		}
		if got := fi.Idx(); got != c.idx {
			t.Errorf("Idx() = %v, want %v", got, c.idx)
		}
		if fi.IsSpecial() {
			t.Errorf("IsSpecial() = true for ordinary index %v", c.idx)
		}
	}
}

func TestFaceIndexSprite(t *testing.T) {
	fi := NewFaceIndex(StyleRegular, SpecialSprite)
	if !fi.IsSpecial() {
		t.Fatal("sprite index should be special")
	}
	if !fi.IsSprite() {
		t.Fatal("sprite index should report IsSprite")
	}
}

func TestFaceIndexSize(t *testing.T) {
	var fi FaceIndex
	if sz := unsafe.Sizeof(fi); sz != 2 {
		t.Fatalf("FaceIndex must be 2 bytes, got %d", sz)
	}
}
