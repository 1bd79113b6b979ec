// Package resolver implements CodepointResolver: the eight-step search
// that turns (codepoint, style, optional presentation) into a
// FaceIndex, layering codepoint overrides, a procedural sprite face,
// and on-demand fallback discovery on top of a collection.Collection.
package resolver

import (
	"log/slog"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/collection"
	"github.com/zen-xu/ghostty-fontcore/discovery"
	"github.com/zen-xu/ghostty-fontcore/face"
	"github.com/zen-xu/ghostty-fontcore/internal/cache"
	"github.com/zen-xu/ghostty-fontcore/sprite"
)

// Option configures a Resolver.
type Option struct {
	// StylesEnabled gates non-regular styles; a disabled style restarts
	// resolution at StyleRegular (algorithm step 1).
	StylesEnabled [ghosttyfont.NumStyles]bool

	// CodepointMap is the explicit codepoint-to-Descriptor override
	// consulted by step 2. Nil/empty means no overrides configured.
	CodepointMap CodepointMap

	// Sprite is the procedural face consulted by step 3. Nil disables
	// sprite rendering entirely.
	Sprite *sprite.Face

	// Discovery is the fallback-search back-end consulted by steps 2
	// and 7. Nil disables both codepoint-override discovery and
	// fallback discovery (the resolver degrades to Collection-only
	// search).
	Discovery discovery.Discoverer

	// Size and Monospace are passed through to Discovery.DiscoverFallback
	// as the size/monospace hints; Bold/Italic hints are derived from
	// the style under resolution.
	Size      float64
	Monospace bool
}

// Resolver implements CodepointResolver.
type Resolver struct {
	collection      *collection.Collection
	opts            Option
	descriptorCache *cache.Cache[string, *ghosttyfont.FaceIndex]
}

// New builds a Resolver over c. StyleRegular is always treated as
// enabled regardless of opts.StylesEnabled, since step 1's restart
// target must always be available.
func New(c *collection.Collection, opts Option) *Resolver {
	opts.StylesEnabled[ghosttyfont.StyleRegular] = true
	return &Resolver{
		collection:      c,
		opts:            opts,
		descriptorCache: cache.New[string, *ghosttyfont.FaceIndex](128),
	}
}

// SetSprite installs or replaces the sprite face step 3 consults. grid
// uses this to publish a SpriteFace sized to the metrics it derives
// from the regular face's 'M' glyph, which are only known after the
// Resolver already exists.
func (r *Resolver) SetSprite(sp *sprite.Face) {
	r.opts.Sprite = sp
}

// Resolve implements the eight-step algorithm. It never fails: every
// internal error (discovery, collection mutation) is logged via
// ghosttyfont.Logger and treated as "this candidate does not match".
func (r *Resolver) Resolve(cp rune, style ghosttyfont.Style, p *ghosttyfont.Presentation) (ghosttyfont.FaceIndex, bool) {
	// Step 1: disabled style restarts at regular.
	if style != ghosttyfont.StyleRegular && !r.opts.StylesEnabled[style] {
		style = ghosttyfont.StyleRegular
	}

	// Step 2: codepoint override.
	if desc, ok := r.opts.CodepointMap.Lookup(cp); ok {
		key := desc.Key()
		if cached, hit := r.descriptorCache.Get(key); hit {
			if cached != nil && r.collection.HasCodepoint(*cached, cp, ghosttyfont.AnyPresentation()) {
				return *cached, true
			}
			if cached == nil {
				ghosttyfont.Logger().Debug("resolver: codepoint override cached as no match", slog.String("descriptor", key))
			}
			// Either a cached negative result, or a cached index that
			// no longer claims the codepoint: either way, step 2 is
			// done for this call; fall through to the rest of the
			// algorithm rather than re-querying discovery.
		} else if r.opts.Discovery != nil {
			idx, found := r.discoverOverride(desc)
			if found {
				r.descriptorCache.Set(key, &idx)
				if r.collection.HasCodepoint(idx, cp, ghosttyfont.AnyPresentation()) {
					return idx, true
				}
			} else {
				ghosttyfont.Logger().Debug("resolver: discovery found no codepoint override face", slog.String("descriptor", key))
				r.descriptorCache.Set(key, nil)
			}
		}
	}

	// Step 3: sprite dominance.
	if r.opts.Sprite != nil && r.opts.Sprite.HasCodepoint(cp, p) {
		return ghosttyfont.NewFaceIndex(style, ghosttyfont.SpecialSprite), true
	}

	// Step 4: derive presentation mode.
	mode := r.deriveMode(cp, p)

	// Step 5: exact search.
	if idx, ok := r.collection.GetIndex(cp, style, mode); ok {
		return idx, true
	}

	// Step 6: style fallback to regular, metrics stability.
	if style != ghosttyfont.StyleRegular {
		return r.Resolve(cp, ghosttyfont.StyleRegular, p)
	}

	// Step 7: fallback discovery, only at style=regular.
	if r.opts.Discovery != nil {
		if idx, ok := r.resolveFallbackDiscovery(cp, style, mode); ok {
			return idx, true
		}
	}

	// Step 8: last resort.
	if style == ghosttyfont.StyleRegular && p == nil {
		return 0, false
	}
	return r.collection.GetIndex(cp, ghosttyfont.StyleRegular, ghosttyfont.AnyPresentation())
}

// discoverOverride asks Discovery for the first face matching desc,
// adds it to the collection as Deferred(regular) if found, and returns
// its new index. Resolve caches that index and returns it as the
// resolution result when the new entry claims the codepoint, the same
// check a later descriptor-cache hit applies.
func (r *Resolver) discoverOverride(desc face.Descriptor) (ghosttyfont.FaceIndex, bool) {
	for d := range r.opts.Discovery.Discover(desc) {
		idx, err := r.collection.Add(ghosttyfont.StyleRegular, collection.NewDeferredEntry(d))
		if err != nil {
			ghosttyfont.Logger().Warn("resolver: failed to add discovered override face", slog.Any("error", err))
			return 0, false
		}
		return idx, true
	}
	return 0, false
}

// deriveMode implements step 4: an explicit presentation always wins;
// otherwise the UCD default presentation for cp applies.
func (r *Resolver) deriveMode(cp rune, p *ghosttyfont.Presentation) ghosttyfont.PresentationMode {
	if p != nil {
		return ghosttyfont.ExplicitPresentation(*p)
	}
	if defaultPresentationEmoji(cp) {
		return ghosttyfont.DefaultPresentation(ghosttyfont.PresentationEmoji)
	}
	return ghosttyfont.DefaultPresentation(ghosttyfont.PresentationText)
}

// resolveFallbackDiscovery implements step 7: iterate fallback
// candidates, verify each against the derived presentation mode (under
// the stricter fallback rule, since discovery cannot filter by
// presentation itself), add the first verified candidate as
// FallbackDeferred, and return its index.
func (r *Resolver) resolveFallbackDiscovery(cp rune, style ghosttyfont.Style, mode ghosttyfont.PresentationMode) (ghosttyfont.FaceIndex, bool) {
	p := fallbackPresentationFor(mode)
	for d := range r.opts.Discovery.DiscoverFallback(cp, r.opts.Size, style.Bold(), style.Italic(), r.opts.Monospace) {
		if !d.HasCodepoint(cp, p) {
			continue
		}
		idx, err := r.collection.Add(style, collection.NewFallbackDeferredEntry(d))
		if err != nil {
			ghosttyfont.Logger().Warn("resolver: failed to add fallback face", slog.Any("error", err))
			continue
		}
		return idx, true
	}
	return 0, false
}

// fallbackPresentationFor mirrors collection's unexported
// presentationFor for the FallbackDeferred row of the presentation
// table: explicit mode always enforces the presentation; default mode
// is held to the same strict rule (fallbacks never hijack a codepoint
// whose default presentation disagrees with what they offer); any
// mode does not constrain presentation at all.
func fallbackPresentationFor(mode ghosttyfont.PresentationMode) *ghosttyfont.Presentation {
	if p, ok := mode.IsExplicit(); ok {
		return &p
	}
	if p, ok := mode.IsDefault(); ok {
		return &p
	}
	return nil
}

// GetPresentation classifies a resolved glyph: the sprite special
// always renders as text; otherwise presentation is derived per-glyph
// from whether the
// specific glyph id is a colour glyph, since a single face may mix
// monochrome and colour glyphs.
func (r *Resolver) GetPresentation(idx ghosttyfont.FaceIndex, glyphID ghosttyfont.GlyphID) ghosttyfont.Presentation {
	if idx.IsSprite() {
		return ghosttyfont.PresentationText
	}
	f, err := r.collection.GetFace(idx)
	if err != nil {
		ghosttyfont.Logger().Warn("resolver: GetPresentation could not resolve face", slog.Any("error", err))
		return ghosttyfont.PresentationText
	}
	if f.IsColorGlyph(glyphID) {
		return ghosttyfont.PresentationEmoji
	}
	return ghosttyfont.PresentationText
}
