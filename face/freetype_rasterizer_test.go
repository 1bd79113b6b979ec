package face

import (
	"errors"
	"testing"

	"github.com/zen-xu/ghostty-fontcore"
)

func TestFreetypeRasterizerNewFaceRejectsGarbage(t *testing.T) {
	var r FreetypeRasterizer
	_, err := r.NewFace([]byte("not a font"), 12, 0)
	if err == nil {
		t.Fatal("expected an error parsing non-font data")
	}
	if !errors.Is(err, ghosttyfont.ErrLoadFailed) {
		t.Fatalf("expected wrapped ErrLoadFailed, got %v", err)
	}
}

func TestModifierApply(t *testing.T) {
	abs := &Modifier{Value: 10}
	if got := abs.Apply(99); got != 10 {
		t.Fatalf("absolute modifier: got %v, want 10", got)
	}

	pct := &Modifier{Value: 150, Percent: true}
	if got := pct.Apply(10); got != 15 {
		t.Fatalf("percent modifier: got %v, want 15", got)
	}

	var nilMod *Modifier
	if got := nilMod.Apply(42); got != 42 {
		t.Fatalf("nil modifier should pass through original: got %v, want 42", got)
	}
}
