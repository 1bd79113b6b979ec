package ghosttyfont

// FaceIndex is a packed identifier for an entry in a Collection:
// 2 bits of Style and 14 bits of index within that style's entry list.
// The underlying type is exactly 2 bytes, matching the memory-efficiency
// invariant spec'd for hot hashmap keys (codepoint cache, glyph cache).
type FaceIndex uint16

const (
	faceIndexStyleShift = 14
	faceIndexIdxMask    = 1<<faceIndexStyleShift - 1
)

// SpecialStart is the first index value reserved for virtual faces
// (those that do not correspond to a Collection entry). A Collection may
// hold at most SpecialStart entries per style.
const SpecialStart = faceIndexIdxMask

// SpecialSprite is the FaceIndex.Idx value denoting the synthetic sprite
// face.
const SpecialSprite = SpecialStart

// NewFaceIndex packs a style and an index into a FaceIndex. idx must be
// less than SpecialStart for a real Collection entry, or equal to
// SpecialSprite for the sprite special.
func NewFaceIndex(style Style, idx int) FaceIndex {
	return FaceIndex(uint16(style)<<faceIndexStyleShift | uint16(idx)&faceIndexIdxMask)
}

// Style returns the packed style.
func (fi FaceIndex) Style() Style {
	return Style(fi >> faceIndexStyleShift)
}

// Idx returns the packed index within the style's entry list.
func (fi FaceIndex) Idx() int {
	return int(fi & faceIndexIdxMask)
}

// IsSpecial reports whether this index denotes a virtual face rather
// than a Collection entry.
func (fi FaceIndex) IsSpecial() bool {
	return fi.Idx() >= SpecialStart
}

// IsSprite reports whether this index denotes the synthetic sprite face.
func (fi FaceIndex) IsSprite() bool {
	return fi.Idx() == SpecialSprite
}
