// Package collection implements the priority-ordered, per-style list
// of font Entries a CodepointResolver searches: Collection is the
// "which face, among the ones I already know about" half of font
// resolution; discovery and fallback search live one layer up, in
// resolver.
package collection

import (
	"fmt"

	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/face"
)

// entry is the closed sum type every Collection slot holds: one of
// five concrete, unexported implementations, gated behind an
// unexported marker method so no outside package can add a sixth
// variant. This is the idiomatic-Go rendering of a closed sum type —
// a sealed interface rather than an enum-plus-union, since Go has no
// native tagged union.
type entry interface {
	isEntry()
}

type deferredEntry struct{ face *face.DeferredFace }
type loadedEntry struct{ face face.Face }
type fallbackDeferredEntry struct{ face *face.DeferredFace }
type fallbackLoadedEntry struct{ face face.Face }

// aliasEntry borrows another entry in the same style's list by index
// rather than by pointer: Collection entries live in a growable slice,
// and Go slices may reallocate on append, so a stored pointer into the
// backing array would dangle across a resize. An index stays valid
// because Collection only ever appends.
type aliasEntry struct {
	style ghosttyfont.Style
	idx   int
}

func (deferredEntry) isEntry()         {}
func (loadedEntry) isEntry()           {}
func (fallbackDeferredEntry) isEntry() {}
func (fallbackLoadedEntry) isEntry()   {}
func (aliasEntry) isEntry()            {}

// NewDeferredEntry wraps a DeferredFace as a user-chosen (non-fallback)
// entry.
func NewDeferredEntry(d *face.DeferredFace) *EntryValue {
	return &EntryValue{e: deferredEntry{face: d}}
}

// NewLoadedEntry wraps an already-materialised Face as a user-chosen
// entry.
func NewLoadedEntry(f face.Face) *EntryValue {
	return &EntryValue{e: loadedEntry{face: f}}
}

// NewFallbackDeferredEntry wraps a DeferredFace discovered as a
// fallback candidate (subject to the stricter presentation-matching
// rule fallbacks get).
func NewFallbackDeferredEntry(d *face.DeferredFace) *EntryValue {
	return &EntryValue{e: fallbackDeferredEntry{face: d}}
}

// NewFallbackLoadedEntry wraps an already-materialised fallback Face.
func NewFallbackLoadedEntry(f face.Face) *EntryValue {
	return &EntryValue{e: fallbackLoadedEntry{face: f}}
}

// EntryValue is the exported handle callers pass to Collection.Add;
// it exists so callers outside this package can build and hold an
// entry value without being able to implement the entry interface
// themselves (aliasEntry is never constructible from outside).
type EntryValue struct{ e entry }

// Collection is a priority-ordered, per-style list of font entries.
// It is not internally synchronized: callers that share a Collection
// across goroutines (SharedGrid) are expected to hold their own lock
// around every method call.
type Collection struct {
	styles    [ghosttyfont.NumStyles][]entry
	loadOpts  *face.LoadOptions
}

// New creates an empty Collection with no LoadOptions: Add will reject
// any Deferred-kind entry with ErrDeferredLoadingUnavailable, since
// there is no Rasterizer to promote one with.
func New() *Collection {
	return &Collection{}
}

// NewWithLoadOptions creates an empty Collection configured to promote
// Deferred entries on demand.
func NewWithLoadOptions(opts face.LoadOptions) *Collection {
	return &Collection{loadOpts: &opts}
}

// Add appends ev to style's entry list and returns its FaceIndex.
func (c *Collection) Add(style ghosttyfont.Style, ev *EntryValue) (ghosttyfont.FaceIndex, error) {
	switch ev.e.(type) {
	case deferredEntry, fallbackDeferredEntry:
		if c.loadOpts == nil {
			return 0, ghosttyfont.ErrDeferredLoadingUnavailable
		}
	}

	list := c.styles[style]
	if len(list) >= ghosttyfont.SpecialStart {
		return 0, ghosttyfont.ErrCollectionFull
	}

	idx := len(list)
	c.styles[style] = append(list, ev.e)
	return ghosttyfont.NewFaceIndex(style, idx), nil
}

// GetFace resolves index to a Face, materialising a Deferred entry on
// first touch (swapping the Collection's stored entry into its Loaded
// form) and following an Alias transparently.
func (c *Collection) GetFace(index ghosttyfont.FaceIndex) (face.Face, error) {
	if index.IsSpecial() {
		return nil, ghosttyfont.ErrSpecialHasNoFace
	}
	return c.resolveFace(index.Style(), index.Idx())
}

func (c *Collection) resolveFace(style ghosttyfont.Style, idx int) (face.Face, error) {
	list := c.styles[style]
	if idx < 0 || idx >= len(list) {
		return nil, fmt.Errorf("collection: index %d out of range for style %v", idx, style)
	}

	switch e := list[idx].(type) {
	case loadedEntry:
		return e.face, nil
	case fallbackLoadedEntry:
		return e.face, nil
	case deferredEntry:
		f, err := e.face.LoadSelf(*c.loadOpts)
		if err != nil {
			return nil, err
		}
		list[idx] = loadedEntry{face: f}
		return f, nil
	case fallbackDeferredEntry:
		f, err := e.face.LoadSelf(*c.loadOpts)
		if err != nil {
			return nil, err
		}
		list[idx] = fallbackLoadedEntry{face: f}
		return f, nil
	case aliasEntry:
		return c.resolveFace(e.style, e.idx)
	default:
		return nil, fmt.Errorf("collection: unknown entry type %T", e)
	}
}

// GetIndex performs a linear, first-match-wins scan of style's entry
// list for a codepoint under the given presentation mode. It does not
// force-load any Deferred entry: deferred entries answer from their
// charset metadata alone.
func (c *Collection) GetIndex(cp rune, style ghosttyfont.Style, mode ghosttyfont.PresentationMode) (ghosttyfont.FaceIndex, bool) {
	for idx, e := range c.styles[style] {
		if c.matches(style, e, cp, mode) {
			return ghosttyfont.NewFaceIndex(style, idx), true
		}
	}
	return 0, false
}

// HasCodepoint reports whether the entry at index matches cp under
// mode, per the entry kind's presentation-matching rule.
func (c *Collection) HasCodepoint(index ghosttyfont.FaceIndex, cp rune, mode ghosttyfont.PresentationMode) bool {
	if index.IsSpecial() {
		return false
	}
	list := c.styles[index.Style()]
	idx := index.Idx()
	if idx < 0 || idx >= len(list) {
		return false
	}
	return c.matches(index.Style(), list[idx], cp, mode)
}

// matches implements the per-entry-kind presentation-matching rules:
// each entry kind derives its own presentation pointer to pass down to
// the shared face-level helpers, rather than those helpers encoding
// per-kind policy themselves.
func (c *Collection) matches(style ghosttyfont.Style, e entry, cp rune, mode ghosttyfont.PresentationMode) bool {
	switch v := e.(type) {
	case deferredEntry:
		return v.face.HasCodepoint(cp, presentationFor(mode, false))
	case fallbackDeferredEntry:
		return v.face.HasCodepoint(cp, presentationFor(mode, true))
	case loadedEntry:
		return face.HasCodepointOnFace(v.face, cp, presentationFor(mode, false))
	case fallbackLoadedEntry:
		return face.HasCodepointOnFace(v.face, cp, presentationFor(mode, true))
	case aliasEntry:
		list := c.styles[v.style]
		if v.idx < 0 || v.idx >= len(list) {
			return false
		}
		return c.matches(v.style, list[v.idx], cp, mode)
	default:
		return false
	}
}

// presentationFor derives the *Presentation to pass to a face-level
// matcher: nil means "don't care" (any mode, or default mode on a
// non-fallback entry, which ignores presentation — an explicit
// user-chosen face is trusted to supply any glyph it has); non-nil
// enforces the strict check (explicit mode always; default mode on a
// fallback entry, which must not hijack a codepoint whose default
// presentation disagrees with what it offers).
func presentationFor(mode ghosttyfont.PresentationMode, isFallback bool) *ghosttyfont.Presentation {
	if p, ok := mode.IsExplicit(); ok {
		return &p
	}
	if p, ok := mode.IsDefault(); ok && isFallback {
		return &p
	}
	return nil
}

// SetSize updates the LoadOptions size and resizes every already-
// Loaded face in place.
func (c *Collection) SetSize(size float64) error {
	if c.loadOpts != nil {
		c.loadOpts.Size = size
	}
	for _, list := range c.styles {
		for _, e := range list {
			var f face.Face
			switch v := e.(type) {
			case loadedEntry:
				f = v.face
			case fallbackLoadedEntry:
				f = v.face
			}
			if f != nil {
				if err := f.SetSize(size); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Len returns the number of entries in style's list. Entries are only
// ever appended, so Len is non-decreasing over a Collection's lifetime.
func (c *Collection) Len(style ghosttyfont.Style) int {
	return len(c.styles[style])
}
