package gridset

import (
	"testing"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
	"github.com/zen-xu/ghostty-fontcore/discovery"
	"github.com/zen-xu/ghostty-fontcore/face"
)

// fakeFace is a minimal face.Face test double.
type fakeFace struct {
	glyphs   map[rune]ghosttyfont.GlyphID
	colorIDs map[ghosttyfont.GlyphID]bool
}

func (f *fakeFace) GlyphIndex(cp rune) (ghosttyfont.GlyphID, bool) {
	id, ok := f.glyphs[cp]
	return id, ok
}
func (f *fakeFace) IsColorGlyph(id ghosttyfont.GlyphID) bool { return f.colorIDs[id] }
func (f *fakeFace) RenderGlyph(a *atlas.Atlas, id ghosttyfont.GlyphID, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error) {
	return ghosttyfont.Glyph{Width: 1, Height: 1}, nil
}
func (f *fakeFace) Presentation() ghosttyfont.Presentation { return ghosttyfont.PresentationText }
func (f *fakeFace) HasColor() bool                         { return len(f.colorIDs) > 0 }
func (f *fakeFace) Metrics() ghosttyfont.Metrics {
	return ghosttyfont.Metrics{CellWidth: 10, CellHeight: 20, UnderlinePosition: 2, UnderlineThickness: 1}
}
func (f *fakeFace) SetSize(size float64) error { return nil }
func (f *fakeFace) Name() string               { return "fake" }

func monoFace() *fakeFace {
	f := &fakeFace{glyphs: map[rune]ghosttyfont.GlyphID{}, colorIDs: map[ghosttyfont.GlyphID]bool{}}
	for cp := rune(0x20); cp <= 0x7E; cp++ {
		f.glyphs[cp] = ghosttyfont.GlyphID(cp)
	}
	return f
}

// fakeRasterizer resolves a tag string (found verbatim in the font
// bytes) to a pre-registered fakeFace, so tests can drive DeferredFace
// promotion without a real font parser.
type fakeRasterizer struct {
	byTag map[string]*fakeFace
}

func newFakeRasterizer() *fakeRasterizer {
	return &fakeRasterizer{byTag: map[string]*fakeFace{}}
}

func (r *fakeRasterizer) Register(tag string, f *fakeFace) {
	r.byTag[tag] = f
}

func (r *fakeRasterizer) NewFace(data []byte, size float64, flags face.RasterizerFlags) (face.Face, error) {
	if f, ok := r.byTag[string(data)]; ok {
		return f, nil
	}
	return nil, ghosttyfont.ErrLoadFailed
}

func deferredTagged(tag string, hasEmoji bool, runes ...rune) *face.DeferredFace {
	d := face.NewDeferredFace(face.Descriptor{Family: tag}, hasEmoji, runes...)
	d.Data = []byte(tag)
	return d
}

func newTestSet(t *testing.T) (*Set, *fakeRasterizer, *discovery.Static) {
	t.Helper()
	ras := newFakeRasterizer()
	stat := discovery.NewStatic()

	ras.Register("mono", monoFace())
	monoDeferred := deferredTagged("mono", false, asciiRunes()...)
	stat.Add(face.Descriptor{Family: "mono"}, monoDeferred)

	s := NewSet(ras, func() discovery.Discoverer { return stat }, BuiltinFallbacks{})
	return s, ras, stat
}

func asciiRunes() []rune {
	var rs []rune
	for cp := rune(0x20); cp <= 0x7E; cp++ {
		rs = append(rs, cp)
	}
	return rs
}

func baseConfig() Config {
	return Config{
		FontFamily: []string{"mono"},
		FontSize:   12,
		Monospace:  true,
	}
}

func TestRefBuildsAndCachesByConfig(t *testing.T) {
	s, _, _ := newTestSet(t)
	cfg := baseConfig()

	g1, err := s.Ref(cfg)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	g2, err := s.Ref(cfg)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if g1 != g2 {
		t.Fatal("expected the second Ref with an identical Config to return the same grid")
	}
	if s.Len() != 1 {
		t.Fatalf("expected exactly one registered config, got %d", s.Len())
	}
}

// Refcount correctness: paired Ref/Deref tears down exactly once.
func TestRefDerefRefcounting(t *testing.T) {
	s, _, _ := newTestSet(t)
	cfg := baseConfig()

	if _, err := s.Ref(cfg); err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if _, err := s.Ref(cfg); err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if !s.Deref(cfg) {
		t.Fatal("expected Deref to succeed")
	}
	if s.Len() != 1 {
		t.Fatal("grid should still be registered after one of two derefs")
	}
	if !s.Deref(cfg) {
		t.Fatal("expected Deref to succeed")
	}
	if s.Len() != 0 {
		t.Fatal("expected the grid to be torn down after the matching deref")
	}

	// ref; deref; ref -> a fresh grid is built (no grace period).
	g1, err := s.Ref(cfg)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if !s.Deref(cfg) {
		t.Fatal("expected Deref to succeed")
	}
	g2, err := s.Ref(cfg)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	if g1 == g2 {
		t.Fatal("expected a brand new grid after the registry emptied out")
	}
}

func TestDerefUnknownConfigReturnsFalse(t *testing.T) {
	s, _, _ := newTestSet(t)
	if s.Deref(baseConfig()) {
		t.Fatal("expected Deref on an unregistered config to report false")
	}
}

func TestConfigKeyDistinguishesFamilies(t *testing.T) {
	a := baseConfig()
	b := baseConfig()
	b.FontFamily = []string{"other"}
	if a.Key() == b.Key() {
		t.Fatal("expected different family lists to produce different keys")
	}
}

func TestRefResolvesCodepointInBuiltCollection(t *testing.T) {
	s, _, _ := newTestSet(t)
	g, err := s.Ref(baseConfig())
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	idx, ok := g.IndexFor('A', ghosttyfont.StyleRegular, nil)
	if !ok {
		t.Fatal("expected 'A' to resolve through the built collection")
	}
	if idx.Style() != ghosttyfont.StyleRegular {
		t.Fatalf("unexpected style: %v", idx.Style())
	}
}
