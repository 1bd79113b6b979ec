// Package discovery defines the font-file discovery boundary
// CodepointResolver consumes: enumerating faces matching a descriptor,
// and searching for a fallback face that covers a specific codepoint.
// Real back-ends (fontconfig, Core Text, DirectWrite) live outside
// this module; Static here is the in-memory implementation used by
// tests and by embedders that pre-enumerate their own font set.
package discovery

import (
	"iter"

	"github.com/zen-xu/ghostty-fontcore/face"
)

// Discoverer is the font-file discovery back-end boundary.
type Discoverer interface {
	// Discover yields every known face matching d (typically by family
	// name, optionally narrowed by style/variation constraints).
	Discover(d face.Descriptor) iter.Seq[*face.DeferredFace]

	// DiscoverFallback yields candidate faces that might cover cp, in
	// the back-end's preferred order, for the given size/style hints.
	// It cannot itself filter by presentation; the caller verifies that.
	DiscoverFallback(cp rune, size float64, bold, italic, monospace bool) iter.Seq[*face.DeferredFace]
}

// Static is a slice-scan Discoverer: a fixed, pre-registered set of
// (Descriptor, DeferredFace) pairs, searched linearly. It makes no
// filesystem or platform calls.
type Static struct {
	entries []staticEntry
}

type staticEntry struct {
	descriptor face.Descriptor
	face       *face.DeferredFace
}

// NewStatic creates an empty Static discoverer.
func NewStatic() *Static {
	return &Static{}
}

// Add registers f as discoverable under descriptor d.
func (s *Static) Add(d face.Descriptor, f *face.DeferredFace) {
	s.entries = append(s.entries, staticEntry{descriptor: d, face: f})
}

// Discover yields every registered face whose descriptor matches d.
func (s *Static) Discover(d face.Descriptor) iter.Seq[*face.DeferredFace] {
	return func(yield func(*face.DeferredFace) bool) {
		for _, e := range s.entries {
			if !descriptorMatches(e.descriptor, d) {
				continue
			}
			if !yield(e.face) {
				return
			}
		}
	}
}

// DiscoverFallback yields every registered face covering cp (checked
// via the face's own charset metadata, ignoring presentation), narrowed
// by the bold/italic/monospace hints where the candidate's descriptor
// states them.
func (s *Static) DiscoverFallback(cp rune, size float64, bold, italic, monospace bool) iter.Seq[*face.DeferredFace] {
	return func(yield func(*face.DeferredFace) bool) {
		for _, e := range s.entries {
			if !e.face.HasCodepoint(cp, nil) {
				continue
			}
			if e.descriptor.Bold != nil && *e.descriptor.Bold != bold {
				continue
			}
			if e.descriptor.Italic != nil && *e.descriptor.Italic != italic {
				continue
			}
			if e.descriptor.Monospace != nil && *e.descriptor.Monospace != monospace {
				continue
			}
			if !yield(e.face) {
				return
			}
		}
	}
}

// descriptorMatches reports whether candidate satisfies the Family,
// StyleName, Bold, Italic and Monospace constraints query sets (a
// zero-value field in query means "don't care"). Size, Codepoint and
// Variations are not compared.
func descriptorMatches(candidate, query face.Descriptor) bool {
	if query.Family != "" && candidate.Family != query.Family {
		return false
	}
	if query.StyleName != "" && candidate.StyleName != query.StyleName {
		return false
	}
	if query.Bold != nil && (candidate.Bold == nil || *candidate.Bold != *query.Bold) {
		return false
	}
	if query.Italic != nil && (candidate.Italic == nil || *candidate.Italic != *query.Italic) {
		return false
	}
	if query.Monospace != nil && (candidate.Monospace == nil || *candidate.Monospace != *query.Monospace) {
		return false
	}
	return true
}
