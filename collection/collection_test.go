package collection

import (
	"errors"
	"testing"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
	"github.com/zen-xu/ghostty-fontcore/face"
)

// fakeFace is a minimal face.Face for exercising Collection without a
// real rasteriser.
type fakeFace struct {
	name      string
	glyphs    map[rune]ghosttyfont.GlyphID
	colorIDs  map[ghosttyfont.GlyphID]bool
	hasColor  bool
	size      float64
}

func (f *fakeFace) GlyphIndex(cp rune) (ghosttyfont.GlyphID, bool) {
	id, ok := f.glyphs[cp]
	return id, ok
}
func (f *fakeFace) IsColorGlyph(id ghosttyfont.GlyphID) bool { return f.colorIDs[id] }
func (f *fakeFace) RenderGlyph(a *atlas.Atlas, id ghosttyfont.GlyphID, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error) {
	return ghosttyfont.Glyph{}, nil
}
func (f *fakeFace) Presentation() ghosttyfont.Presentation { return ghosttyfont.PresentationText }
func (f *fakeFace) HasColor() bool                          { return f.hasColor }
func (f *fakeFace) Metrics() ghosttyfont.Metrics            { return ghosttyfont.Metrics{} }
func (f *fakeFace) SetSize(size float64) error              { f.size = size; return nil }
func (f *fakeFace) Name() string                            { return f.name }

func newFakeFace(name string, codepoints ...rune) *fakeFace {
	f := &fakeFace{name: name, glyphs: map[rune]ghosttyfont.GlyphID{}, colorIDs: map[ghosttyfont.GlyphID]bool{}}
	for i, cp := range codepoints {
		f.glyphs[cp] = ghosttyfont.GlyphID(i + 1)
	}
	return f
}

func TestAddAndGetFaceLoaded(t *testing.T) {
	c := New()
	f := newFakeFace("regular", 'A', 'B')
	idx, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := c.GetFace(idx)
	if err != nil {
		t.Fatalf("GetFace: %v", err)
	}
	if got != face.Face(f) {
		t.Fatal("GetFace did not return the added face")
	}
}

func TestAddDeferredWithoutLoadOptionsFails(t *testing.T) {
	c := New()
	d := face.NewDeferredFace(face.Descriptor{Family: "X"}, false, 'A')
	_, err := c.Add(ghosttyfont.StyleRegular, NewDeferredEntry(d))
	if !errors.Is(err, ghosttyfont.ErrDeferredLoadingUnavailable) {
		t.Fatalf("expected ErrDeferredLoadingUnavailable, got %v", err)
	}
}

func TestCollectionFull(t *testing.T) {
	c := New()
	f := newFakeFace("x")
	for i := 0; i < ghosttyfont.SpecialStart; i++ {
		if _, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f)); err != nil {
			t.Fatalf("unexpected error at entry %d: %v", i, err)
		}
	}
	if _, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f)); !errors.Is(err, ghosttyfont.ErrCollectionFull) {
		t.Fatalf("expected ErrCollectionFull, got %v", err)
	}
}

func TestGetIndexExplicitPresentation(t *testing.T) {
	c := New()
	// A loaded face where 'A' maps to a color glyph.
	f := newFakeFace("emoji-ish", 'A')
	f.colorIDs[1] = true
	if _, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	textMode := ghosttyfont.ExplicitPresentation(ghosttyfont.PresentationText)
	if _, ok := c.GetIndex('A', ghosttyfont.StyleRegular, textMode); ok {
		t.Fatal("expected explicit text presentation to reject a color glyph")
	}

	emojiMode := ghosttyfont.ExplicitPresentation(ghosttyfont.PresentationEmoji)
	if _, ok := c.GetIndex('A', ghosttyfont.StyleRegular, emojiMode); !ok {
		t.Fatal("expected explicit emoji presentation to accept a color glyph")
	}
}

func TestGetIndexDefaultModeIgnoresPresentationForLoaded(t *testing.T) {
	c := New()
	f := newFakeFace("emoji-ish", 'A')
	f.colorIDs[1] = true
	if _, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	defaultText := ghosttyfont.DefaultPresentation(ghosttyfont.PresentationText)
	if _, ok := c.GetIndex('A', ghosttyfont.StyleRegular, defaultText); !ok {
		t.Fatal("a non-fallback Loaded entry must ignore presentation in default mode")
	}
}

func TestGetIndexDefaultModeIsStrictForFallback(t *testing.T) {
	c := New()
	f := newFakeFace("emoji-ish", 'A')
	f.colorIDs[1] = true
	if _, err := c.Add(ghosttyfont.StyleRegular, NewFallbackLoadedEntry(f)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	defaultText := ghosttyfont.DefaultPresentation(ghosttyfont.PresentationText)
	if _, ok := c.GetIndex('A', ghosttyfont.StyleRegular, defaultText); ok {
		t.Fatal("a FallbackLoaded entry must apply the strict rule even in default mode")
	}

	defaultEmoji := ghosttyfont.DefaultPresentation(ghosttyfont.PresentationEmoji)
	if _, ok := c.GetIndex('A', ghosttyfont.StyleRegular, defaultEmoji); !ok {
		t.Fatal("a FallbackLoaded entry should match default emoji presentation against a color glyph")
	}
}

func TestCompleteStylesAliasesToRegular(t *testing.T) {
	c := New()
	f := newFakeFace("regular", 'A')
	if _, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := c.CompleteStyles(SyntheticConfig{}); err != nil {
		t.Fatalf("CompleteStyles: %v", err)
	}

	for _, style := range []ghosttyfont.Style{ghosttyfont.StyleBold, ghosttyfont.StyleItalic, ghosttyfont.StyleBoldItalic} {
		if c.Len(style) == 0 {
			t.Fatalf("expected style %v to be completed", style)
		}
		idx := ghosttyfont.NewFaceIndex(style, 0)
		got, err := c.GetFace(idx)
		if err != nil {
			t.Fatalf("GetFace(%v): %v", style, err)
		}
		if got != face.Face(f) {
			t.Fatalf("expected style %v to alias to the regular face", style)
		}
	}
}

func TestCompleteStylesNoRegularFails(t *testing.T) {
	c := New()
	if err := c.CompleteStyles(SyntheticConfig{}); !errors.Is(err, ghosttyfont.ErrDefaultUnavailable) {
		t.Fatalf("expected ErrDefaultUnavailable, got %v", err)
	}
}

func TestCollectionMonotonicity(t *testing.T) {
	c := New()
	f := newFakeFace("regular", 'A')
	before := c.Len(ghosttyfont.StyleRegular)
	if _, err := c.Add(ghosttyfont.StyleRegular, NewLoadedEntry(f)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	after := c.Len(ghosttyfont.StyleRegular)
	if after <= before {
		t.Fatalf("expected Len to increase: before=%d after=%d", before, after)
	}
}
