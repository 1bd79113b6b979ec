// Package grid implements SharedGrid: a CodepointResolver plus the two
// caches (codepoint and glyph), the grayscale/colour atlas pair, and
// the cell metrics every renderer on top of a Collection shares.
package grid

import (
	"errors"
	"sync"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/atlas"
	"github.com/zen-xu/ghostty-fontcore/collection"
	"github.com/zen-xu/ghostty-fontcore/face"
	"github.com/zen-xu/ghostty-fontcore/internal/cache"
	"github.com/zen-xu/ghostty-fontcore/resolver"
	"github.com/zen-xu/ghostty-fontcore/sprite"
)

// ErrMetricsFaceUnavailable is returned by New when the 'M' glyph
// cannot be resolved in the regular style: SharedGrid has no way to
// derive cell metrics without it.
var ErrMetricsFaceUnavailable = errors.New("grid: no face provides 'M' under (regular, any); cannot derive metrics")

// cacheCapacity is the soft limit both caches reserve up front.
const cacheCapacity = 128

// initialAtlasSize is the starting (square) dimension for both atlases.
const initialAtlasSize = 256

type codepointCacheKey struct {
	style           ghosttyfont.Style
	cp              rune
	hasPresentation bool
	presentation    ghosttyfont.Presentation
}

type codepointCacheValue struct {
	idx   ghosttyfont.FaceIndex
	found bool
}

type glyphCacheKey struct {
	idx     ghosttyfont.FaceIndex
	glyphID ghosttyfont.GlyphID
	opts    ghosttyfont.RenderOptions
}

type glyphCacheValue struct {
	glyph ghosttyfont.Glyph
	err   error
}

// Options configures a SharedGrid at construction.
type Options struct {
	// Thicken doubles the derived underline thickness grid-wide.
	Thicken bool

	// MetricModifiers applies the configured adjust-* overrides on top
	// of the metrics derived from the 'M' glyph.
	MetricModifiers face.MetricModifiers
}

// SharedGrid is a resolver plus caches plus atlases plus metrics,
// shared (by pointer) across every renderer thread drawing a given
// font configuration. It is not resizable after construction: a
// font-set or size change builds a new SharedGrid and swaps it in.
type SharedGrid struct {
	resolver   *resolver.Resolver
	collection *collection.Collection
	sprite     *sprite.Face

	atlasGray  *atlas.Atlas
	atlasColor *atlas.Atlas

	codepointCache *cache.Cache[codepointCacheKey, codepointCacheValue]
	glyphCache     *cache.Cache[glyphCacheKey, glyphCacheValue]

	metrics ghosttyfont.Metrics

	mu       sync.RWMutex
	inflight map[glyphCacheKey]*sync.WaitGroup
}

// New builds a SharedGrid: it resolves 'M' under (regular, any) to
// derive cell metrics, constructs a sprite.Face sized to those metrics,
// and publishes it onto r so later resolutions can hit sprite
// dominance (algorithm step 3).
func New(c *collection.Collection, r *resolver.Resolver, opts Options) (*SharedGrid, error) {
	idx, ok := r.Resolve('M', ghosttyfont.StyleRegular, nil)
	if !ok {
		return nil, ErrMetricsFaceUnavailable
	}
	f, err := c.GetFace(idx)
	if err != nil {
		return nil, ErrMetricsFaceUnavailable
	}

	metrics := f.Metrics()
	mm := opts.MetricModifiers
	metrics.CellWidth = mm.CellWidth.Apply(metrics.CellWidth)
	metrics.CellHeight = mm.CellHeight.Apply(metrics.CellHeight)
	metrics.CellBaseline = mm.Baseline.Apply(metrics.CellBaseline)
	metrics.UnderlinePosition = mm.UnderlinePosition.Apply(metrics.UnderlinePosition)
	metrics.UnderlineThickness = mm.UnderlineThickness.Apply(metrics.UnderlineThickness)
	metrics.StrikethroughPosition = mm.StrikethroughPosition.Apply(metrics.StrikethroughPosition)
	metrics.StrikethroughThickness = mm.StrikethroughThickness.Apply(metrics.StrikethroughThickness)

	if opts.Thicken {
		metrics.UnderlineThickness *= 2
	}

	thickness := metrics.UnderlineThickness
	if thickness <= 0 {
		thickness = 1
	}
	sp := sprite.NewFace(sprite.Params{
		CellWidth:          uint32(metrics.CellWidth),
		CellHeight:         uint32(metrics.CellHeight),
		Thickness:          thickness,
		UnderlinePosition:  metrics.UnderlinePosition,
		UnderlineThickness: metrics.UnderlineThickness,
	})
	r.SetSprite(sp)

	return &SharedGrid{
		resolver:       r,
		collection:     c,
		sprite:         sp,
		atlasGray:      atlas.New(initialAtlasSize, atlas.FormatGrayscale),
		atlasColor:     atlas.New(initialAtlasSize, atlas.FormatBGRA),
		codepointCache: cache.New[codepointCacheKey, codepointCacheValue](cacheCapacity),
		glyphCache:     cache.New[glyphCacheKey, glyphCacheValue](cacheCapacity),
		metrics:        metrics,
		inflight:       make(map[glyphCacheKey]*sync.WaitGroup),
	}, nil
}

// Metrics returns the cell geometry derived at construction.
func (g *SharedGrid) Metrics() ghosttyfont.Metrics {
	return g.metrics
}

// IndexFor resolves cp to a FaceIndex, consulting (and populating) the
// codepoint cache. A negative result (found == false) is cached too,
// so unresolvable codepoints don't re-run the full resolution search
// on every frame.
func (g *SharedGrid) IndexFor(cp rune, style ghosttyfont.Style, p *ghosttyfont.Presentation) (ghosttyfont.FaceIndex, bool) {
	key := codepointCacheKey{style: style, cp: cp, hasPresentation: p != nil}
	if p != nil {
		key.presentation = *p
	}

	g.mu.RLock()
	if v, ok := g.codepointCache.Get(key); ok {
		g.mu.RUnlock()
		return v.idx, v.found
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.codepointCache.Get(key); ok {
		return v.idx, v.found
	}

	idx, found := g.resolver.Resolve(cp, style, p)
	g.codepointCache.Set(key, codepointCacheValue{idx: idx, found: found})
	return idx, found
}

// GlyphIndexFor returns the font-internal glyph id cp maps to under idx.
// For the sprite special, the codepoint doubles as its own glyph id,
// since SpriteFace has no glyph table to look up.
func (g *SharedGrid) GlyphIndexFor(idx ghosttyfont.FaceIndex, cp rune) (ghosttyfont.GlyphID, bool) {
	if idx.IsSprite() {
		return ghosttyfont.GlyphID(cp), true
	}
	f, err := g.collection.GetFace(idx)
	if err != nil {
		ghosttyfont.Logger().Warn("grid: GetFace failed", "error", err)
		return 0, false
	}
	return f.GlyphIndex(cp)
}

// GetPresentation delegates to the resolver's per-glyph classification.
func (g *SharedGrid) GetPresentation(idx ghosttyfont.FaceIndex, glyphID ghosttyfont.GlyphID) ghosttyfont.Presentation {
	return g.resolver.GetPresentation(idx, glyphID)
}

// RenderGlyph resolves (idx, glyphID, opts) to a placed Glyph,
// consulting (and populating) the glyph cache. On ErrAtlasFull the
// relevant atlas is doubled and the render retried exactly once; a
// second failure propagates the error.
//
// An in-flight marker prevents two goroutines racing on the identical
// glyph key from rasterizing twice. In this implementation rasterization
// still runs with g.mu held for its full duration, so the marker's wait
// branch is not reachable today; it is kept as the extension point for
// a future refactor that releases g.mu around the underlying
// Face.RenderGlyph call.
func (g *SharedGrid) RenderGlyph(idx ghosttyfont.FaceIndex, glyphID ghosttyfont.GlyphID, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error) {
	key := glyphCacheKey{idx: idx, glyphID: glyphID, opts: opts}

	g.mu.RLock()
	if v, ok := g.glyphCache.Get(key); ok {
		g.mu.RUnlock()
		return v.glyph, v.err
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.glyphCache.Get(key); ok {
		return v.glyph, v.err
	}

	if wg, building := g.inflight[key]; building {
		g.mu.Unlock()
		wg.Wait()
		g.mu.Lock()
		v, _ := g.glyphCache.Get(key)
		return v.glyph, v.err
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	g.inflight[key] = wg

	glyph, err := g.rasterizeLocked(idx, glyphID, opts)
	g.glyphCache.Set(key, glyphCacheValue{glyph: glyph, err: err})

	delete(g.inflight, key)
	wg.Done()

	return glyph, err
}

// rasterizeLocked performs the actual render, selecting grayscale vs.
// colour atlas by the glyph's presentation, and retrying once after
// growing the chosen atlas on ErrAtlasFull. Caller must hold g.mu for
// writing.
func (g *SharedGrid) rasterizeLocked(idx ghosttyfont.FaceIndex, glyphID ghosttyfont.GlyphID, opts ghosttyfont.RenderOptions) (ghosttyfont.Glyph, error) {
	a := g.atlasGray
	if g.resolver.GetPresentation(idx, glyphID) == ghosttyfont.PresentationEmoji {
		a = g.atlasColor
	}

	render := func() (ghosttyfont.Glyph, error) {
		if idx.IsSprite() {
			return g.sprite.RenderGlyph(a, rune(glyphID), opts)
		}
		f, err := g.collection.GetFace(idx)
		if err != nil {
			return ghosttyfont.Glyph{}, err
		}
		return f.RenderGlyph(a, glyphID, opts)
	}

	glyph, err := render()
	if errors.Is(err, ghosttyfont.ErrAtlasFull) {
		a.Grow(a.Size() * 2)
		glyph, err = render()
		if errors.Is(err, ghosttyfont.ErrAtlasFull) {
			ghosttyfont.Logger().Warn("grid: atlas still full after growing", "size", a.Size())
		}
	}
	return glyph, err
}
