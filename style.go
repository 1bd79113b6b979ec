package ghosttyfont

// Style is a logical font style. Regular is the zero value by invariant:
// callers that zero-initialize a Style get the safe, always-available
// style.
type Style uint8

const (
	StyleRegular Style = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
)

// NumStyles is the number of Style values; also the size of any
// per-style array such as Collection's internal entry lists.
const NumStyles = 4

func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold_italic"
	default:
		return "unknown"
	}
}

// Bold reports whether the style carries a bold component.
func (s Style) Bold() bool {
	return s == StyleBold || s == StyleBoldItalic
}

// Italic reports whether the style carries an italic component.
func (s Style) Italic() bool {
	return s == StyleItalic || s == StyleBoldItalic
}

// Presentation is the Unicode emoji-vs-text presentation of a glyph.
// Text corresponds to the VS15 variation selector (U+FE0E), Emoji to
// VS16 (U+FE0F).
type Presentation uint8

const (
	PresentationText Presentation = iota
	PresentationEmoji
)

func (p Presentation) String() string {
	if p == PresentationEmoji {
		return "emoji"
	}
	return "text"
}

// presentationModeKind discriminates the three ways a resolution query
// can constrain presentation.
type presentationModeKind uint8

const (
	modeExplicit presentationModeKind = iota
	modeDefault
	modeAny
)

// PresentationMode describes how a resolution query constrains
// presentation: the caller saw an explicit variation selector, the
// codepoint's UCD default applies, or any presentation is acceptable.
type PresentationMode struct {
	kind  presentationModeKind
	value Presentation
}

// ExplicitPresentation builds a mode for a query where the caller saw
// VS15/VS16 and the presentation must be honoured exactly.
func ExplicitPresentation(p Presentation) PresentationMode {
	return PresentationMode{kind: modeExplicit, value: p}
}

// DefaultPresentation builds a mode for a query with no explicit
// selector, where p is the UCD default presentation for the codepoint.
func DefaultPresentation(p Presentation) PresentationMode {
	return PresentationMode{kind: modeDefault, value: p}
}

// AnyPresentation builds a mode that accepts either presentation.
func AnyPresentation() PresentationMode {
	return PresentationMode{kind: modeAny}
}

// IsExplicit reports whether the mode was built by ExplicitPresentation,
// returning the carried presentation.
func (m PresentationMode) IsExplicit() (Presentation, bool) {
	return m.value, m.kind == modeExplicit
}

// IsDefault reports whether the mode was built by DefaultPresentation,
// returning the carried presentation.
func (m PresentationMode) IsDefault() (Presentation, bool) {
	return m.value, m.kind == modeDefault
}

// IsAny reports whether the mode accepts any presentation.
func (m PresentationMode) IsAny() bool {
	return m.kind == modeAny
}

// Presentation returns the carried presentation for explicit/default
// modes, and the zero value (PresentationText) for AnyPresentation.
func (m PresentationMode) Presentation() Presentation {
	return m.value
}

func (m PresentationMode) String() string {
	switch m.kind {
	case modeExplicit:
		return "explicit(" + m.value.String() + ")"
	case modeDefault:
		return "default(" + m.value.String() + ")"
	default:
		return "any"
	}
}
