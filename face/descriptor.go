package face

import "fmt"

// VariationAxis is one OpenType variation-axis constraint in a
// Descriptor, e.g. {Tag: "wght", Value: 700}.
type VariationAxis struct {
	Tag   string
	Value float64
}

// Descriptor is the search criteria passed to a discovery back-end:
// family name, size, codepoint coverage, style booleans, a style name,
// and/or a variation-axis set. All fields are optional except Family,
// which is required for direct (non-fallback) discovery.
type Descriptor struct {
	Family     string
	Size       float64
	Codepoint  *rune
	Bold       *bool
	Italic     *bool
	Monospace  *bool
	StyleName  string
	Variations []VariationAxis
}

// boolPtr values are interned so two Descriptors built with the same
// logical booleans hash identically without requiring callers to share
// pointers.
var (
	trueVal  = true
	falseVal = false
)

// BoolPtr returns a canonical pointer to b, suitable for Descriptor.Bold
// etc. so that two Descriptors with the same boolean compare/hash equal.
func BoolPtr(b bool) *bool {
	if b {
		return &trueVal
	}
	return &falseVal
}

// Key returns a canonical string encoding of the descriptor, used as
// the resolver's DescriptorCache key and as the basis of Equal. Keying
// by the full encoding makes descriptor equality structural: two
// distinct descriptors can never alias each other the way a bare
// numeric hash could.
func (d Descriptor) Key() string {
	cp := "-"
	if d.Codepoint != nil {
		cp = fmt.Sprintf("%d", *d.Codepoint)
	}
	return fmt.Sprintf("%s|%g|%s|%s|%s|%s|%s|%v",
		d.Family, d.Size, cp,
		triState(d.Bold), triState(d.Italic), triState(d.Monospace),
		d.StyleName, d.Variations)
}

// Equal reports whether two Descriptors are structurally identical.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Key() == other.Key()
}

func triState(b *bool) string {
	if b == nil {
		return "?"
	}
	if *b {
		return "1"
	}
	return "0"
}
