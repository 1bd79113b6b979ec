package gridset

import (
	"fmt"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/collection"
	"github.com/zen-xu/ghostty-fontcore/discovery"
	"github.com/zen-xu/ghostty-fontcore/face"
	"github.com/zen-xu/ghostty-fontcore/grid"
	"github.com/zen-xu/ghostty-fontcore/resolver"
)

// BuiltinFallbacks names the three fallback descriptors every
// SharedGrid gets appended to its regular style, in priority order
// after any platform-preferred emoji font: a monospace text font, a
// (typically colour) emoji font, and a text-presentation emoji font.
// These are configurable defaults an embedder supplies, not hardcoded
// paths — font discovery is an external collaborator.
type BuiltinFallbacks struct {
	MonospaceText face.Descriptor
	Emoji         face.Descriptor
	TextEmoji     face.Descriptor
}

type setEntry struct {
	grid     *grid.SharedGrid
	refcount int
}

// Set is SharedGridSet: a refcounted registry of SharedGrids keyed by
// Config. It is not safe for concurrent Ref/Deref — those happen on a
// control thread at surface lifecycle boundaries. Once a
// *grid.SharedGrid is obtained, it may be shared freely across
// renderer threads.
type Set struct {
	rasterizer       face.Rasterizer
	discoveryFactory func() discovery.Discoverer
	discoveryHandle  discovery.Discoverer
	fallbacks        BuiltinFallbacks

	entries map[string]*setEntry
}

// NewSet builds an empty Set. rasterizer is the process-wide library
// handle every face in every grid this Set builds is loaded through.
// discoveryFactory is invoked at most once, on first Ref that actually
// needs to build a grid, since some discovery back-ends are unsafe to
// re-initialise; pass nil for a Set that never performs discovery
// (only pre-resolved/sprite-only configurations).
func NewSet(rasterizer face.Rasterizer, discoveryFactory func() discovery.Discoverer, fallbacks BuiltinFallbacks) *Set {
	return &Set{
		rasterizer:       rasterizer,
		discoveryFactory: discoveryFactory,
		fallbacks:        fallbacks,
		entries:          make(map[string]*setEntry),
	}
}

// Ref returns the SharedGrid for cfg, building one if this exact
// configuration (by structural equality) isn't already registered.
// Each call increments the entry's refcount; pair it with exactly one
// Deref.
func (s *Set) Ref(cfg Config) (*grid.SharedGrid, error) {
	key := cfg.Key()
	if e, ok := s.entries[key]; ok {
		e.refcount++
		return e.grid, nil
	}

	g, err := s.build(cfg)
	if err != nil {
		return nil, err
	}
	s.entries[key] = &setEntry{grid: g, refcount: 1}
	return g, nil
}

// Deref decrements cfg's refcount, tearing down and removing its
// SharedGrid when it reaches zero. There is no grace period: the next
// Ref for an identical Config builds a brand new grid. Returns false
// if cfg has no registered entry (a caller bug: unbalanced Deref).
func (s *Set) Deref(cfg Config) bool {
	key := cfg.Key()
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	e.refcount--
	if e.refcount <= 0 {
		delete(s.entries, key)
	}
	return true
}

// Len reports the number of distinct configurations currently
// registered, for tests exercising refcount behaviour.
func (s *Set) Len() int {
	return len(s.entries)
}

func (s *Set) discovery() discovery.Discoverer {
	if s.discoveryHandle == nil && s.discoveryFactory != nil {
		s.discoveryHandle = s.discoveryFactory()
	}
	return s.discoveryHandle
}

// build constructs the Collection, runs discovery for every configured
// family plus the built-in/preferred fallbacks, completes styles, and
// assembles the Resolver and SharedGrid.
func (s *Set) build(cfg Config) (*grid.SharedGrid, error) {
	c := collection.NewWithLoadOptions(face.LoadOptions{
		Rasterizer:      s.rasterizer,
		Size:            cfg.FontSize,
		MetricModifiers: cfg.MetricModifiers,
	})

	d := s.discovery()
	var stylesEnabled [ghosttyfont.NumStyles]bool
	stylesEnabled[ghosttyfont.StyleRegular] = true

	for _, style := range []ghosttyfont.Style{
		ghosttyfont.StyleRegular, ghosttyfont.StyleBold,
		ghosttyfont.StyleItalic, ghosttyfont.StyleBoldItalic,
	} {
		families, styleName := cfg.familiesFor(style)
		if len(families) > 0 {
			stylesEnabled[style] = true
		}
		if d == nil {
			continue
		}
		for _, family := range families {
			desc := face.Descriptor{Family: family, Size: cfg.FontSize, Variations: cfg.FontVariation}
			if styleName != nil {
				desc.StyleName = *styleName
			}
			for deferredFace := range d.Discover(desc) {
				if _, err := c.Add(style, collection.NewDeferredEntry(deferredFace)); err != nil {
					return nil, fmt.Errorf("gridset: adding %q for style %v: %w", family, style, err)
				}
			}
		}
	}

	if d != nil {
		if cfg.PreferredEmoji != nil {
			s.addFirstFallback(c, d, *cfg.PreferredEmoji)
		}
		s.addFirstFallback(c, d, s.fallbacks.MonospaceText)
		s.addFirstFallback(c, d, s.fallbacks.Emoji)
		s.addFirstFallback(c, d, s.fallbacks.TextEmoji)
	}

	if err := c.CompleteStyles(cfg.SyntheticStyle); err != nil {
		return nil, err
	}

	codepointMap, err := resolver.NewCodepointMap(cfg.CodepointMap)
	if err != nil {
		return nil, err
	}

	r := resolver.New(c, resolver.Option{
		StylesEnabled: stylesEnabled,
		CodepointMap:  codepointMap,
		Discovery:     d,
		Size:          cfg.FontSize,
		Monospace:     cfg.Monospace,
	})

	return grid.New(c, r, grid.Options{
		Thicken:         cfg.Thicken,
		MetricModifiers: cfg.MetricModifiers,
	})
}

// addFirstFallback adds the first face Discovery yields for desc as a
// FallbackDeferred(regular) entry. A descriptor with an empty Family
// matches nothing if the back-end requires one; callers leave
// BuiltinFallbacks fields unset to skip a given fallback entirely.
func (s *Set) addFirstFallback(c *collection.Collection, d discovery.Discoverer, desc face.Descriptor) {
	if desc.Family == "" {
		return
	}
	for deferredFace := range d.Discover(desc) {
		if _, err := c.Add(ghosttyfont.StyleRegular, collection.NewFallbackDeferredEntry(deferredFace)); err != nil {
			ghosttyfont.Logger().Warn("gridset: failed to add fallback face", "family", desc.Family, "error", err)
		}
		return
	}
}
