package face

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/zen-xu/ghostty-fontcore"
)

// DeferredFace is a descriptor carrying just enough metadata to answer
// HasCodepoint without materialising a Face — as fontconfig-style
// discovery back-ends supply (a charset and a langset entry). If no
// such metadata is available (Charset is nil), the face must already be
// Loaded and HasCodepoint delegates to it.
type DeferredFace struct {
	Descriptor Descriptor

	// Charset is the set of codepoints this font covers, when the
	// discovery back-end can supply one without parsing the font file.
	// Nil means "unknown; must load to find out".
	Charset *unicode.RangeTable

	// LangsetHasZsye mirrors the discovery back-end's langset entry
	// `und-zsye`: its presence means the font's default presentation is
	// emoji, its absence means text.
	LangsetHasZsye bool

	// Data is the raw font file bytes the discovery back-end resolved
	// this descriptor to. A back-end that only has a path resolves it
	// to bytes before constructing the DeferredFace; this package never
	// touches a filesystem itself.
	Data []byte

	mu     sync.Mutex
	loaded Face
}

// NewDeferredFace builds a DeferredFace from a set of covered
// codepoints (the table is built with rangetable.New, the
// golang.org/x/text idiom for building ad hoc RangeTables).
func NewDeferredFace(d Descriptor, hasEmoji bool, runes ...rune) *DeferredFace {
	return &DeferredFace{
		Descriptor:     d,
		Charset:        rangetable.New(runes...),
		LangsetHasZsye: hasEmoji,
	}
}

// HasCodepoint answers codepoint-coverage questions without
// materialising a Face whenever Charset is populated. p == nil means
// "don't care about presentation".
func (d *DeferredFace) HasCodepoint(cp rune, p *ghosttyfont.Presentation) bool {
	if loaded := d.loadedFace(); loaded != nil {
		return HasCodepointOnFace(loaded, cp, p)
	}

	if d.Charset == nil {
		// No metadata and not loaded: nothing we can answer without
		// loading. A collection holding such an entry is expected to
		// keep it in Loaded state instead.
		return false
	}

	if !unicode.Is(d.Charset, cp) {
		return false
	}
	if p == nil {
		return true
	}

	derived := ghosttyfont.PresentationText
	if d.LangsetHasZsye {
		derived = ghosttyfont.PresentationEmoji
	}
	return derived == *p
}

// LoadSelf is a convenience wrapper around Load that supplies the
// DeferredFace's own Data, for callers (Collection) that don't want to
// track font bytes separately from the DeferredFace that names them.
func (d *DeferredFace) LoadSelf(opts LoadOptions) (Face, error) {
	return d.Load(d.Data, opts)
}

// Load promotes the DeferredFace to a Face; idempotent. After loading,
// HasCodepoint delegates to the Face.
func (d *DeferredFace) Load(data []byte, opts LoadOptions) (Face, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded != nil {
		return d.loaded, nil
	}
	if opts.Rasterizer == nil {
		return nil, ghosttyfont.ErrDeferredLoadingUnavailable
	}

	f, err := opts.Rasterizer.NewFace(data, opts.Size, opts.RasterizerFlags)
	if err != nil {
		return nil, err
	}
	d.loaded = f
	return f, nil
}

func (d *DeferredFace) loadedFace() Face {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loaded
}

// HasCodepointOnFace answers a presentation-constrained coverage query
// against an already-materialised Face: p == nil checks glyph existence
// only; p != nil additionally requires the glyph's colour status to
// agree with p (text wants a monochrome glyph, emoji a colour one).
// Callers choose the strictness by deciding whether to pass nil or the
// derived presentation.
func HasCodepointOnFace(f Face, cp rune, p *ghosttyfont.Presentation) bool {
	id, ok := f.GlyphIndex(cp)
	if !ok {
		return false
	}
	if p == nil {
		return true
	}
	isColor := f.IsColorGlyph(id)
	if *p == ghosttyfont.PresentationText {
		return !isColor
	}
	return isColor
}
