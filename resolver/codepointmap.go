package resolver

import (
	"fmt"
	"sort"

	"github.com/zen-xu/ghostty-fontcore/face"
)

// CodepointRange maps a contiguous, inclusive codepoint range to a
// Descriptor an explicit CodepointMap entry should resolve through.
type CodepointRange struct {
	Start, End rune
	Descriptor face.Descriptor
}

// CodepointMap is a user-configured override consulted by step 2 of the
// resolution algorithm: contiguous, non-overlapping codepoint ranges to
// Descriptors. The zero value is an empty map (no overrides).
type CodepointMap []CodepointRange

// NewCodepointMap sorts ranges by Start and validates that none
// overlap, per the font core's CodepointMap invariant.
func NewCodepointMap(ranges []CodepointRange) (CodepointMap, error) {
	m := make(CodepointMap, len(ranges))
	copy(m, ranges)
	sort.Slice(m, func(i, j int) bool { return m[i].Start < m[j].Start })

	for i := 1; i < len(m); i++ {
		if m[i].Start <= m[i-1].End {
			return nil, fmt.Errorf("resolver: codepoint map ranges [%#x,%#x] and [%#x,%#x] overlap",
				m[i-1].Start, m[i-1].End, m[i].Start, m[i].End)
		}
	}
	return m, nil
}

// Lookup returns the Descriptor whose range contains cp, via binary
// search over the sorted, non-overlapping range list.
func (m CodepointMap) Lookup(cp rune) (face.Descriptor, bool) {
	lo, hi := 0, len(m)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case cp < m[mid].Start:
			hi = mid
		case cp > m[mid].End:
			lo = mid + 1
		default:
			return m[mid].Descriptor, true
		}
	}
	return face.Descriptor{}, false
}
