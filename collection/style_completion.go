package collection

import (
	"github.com/zen-xu/ghostty-fontcore"
	"github.com/zen-xu/ghostty-fontcore/face"
)

// SyntheticConfig mirrors the font-synthetic-style configuration
// sub-flags: whether style completion may synthesise a missing italic,
// bold, or bold-italic style from the regular face rather than
// aliasing to it.
type SyntheticConfig struct {
	Italic     bool
	Bold       bool
	BoldItalic bool
}

// CompleteStyles ensures every style has at least one entry, invoked
// once after all user-configured faces have been added. It selects the
// first regular entry whose face is either non-colour or contains 'A'
// as the fallback target R, then for each missing style either
// synthesises a variant of R (when enabled and the rasterizer supports
// it) or appends an Alias to R. Returns ErrDefaultUnavailable if no
// eligible regular entry exists.
func (c *Collection) CompleteStyles(cfg SyntheticConfig) error {
	rIdx, ok := c.findTextRegular()
	if !ok {
		return ghosttyfont.ErrDefaultUnavailable
	}
	rFace, err := c.resolveFace(ghosttyfont.StyleRegular, rIdx)
	if err != nil {
		return ghosttyfont.ErrDefaultUnavailable
	}

	boldHadUser := c.Len(ghosttyfont.StyleBold) > 0
	italicHadUser := c.Len(ghosttyfont.StyleItalic) > 0

	if !italicHadUser {
		if err := c.completeStyle(ghosttyfont.StyleItalic, rIdx, cfg.Italic, func(flags face.RasterizerFlags) (face.Face, bool) {
			return synthesizeItalic(rFace, flags)
		}); err != nil {
			return err
		}
	}

	if !boldHadUser {
		if err := c.completeStyle(ghosttyfont.StyleBold, rIdx, cfg.Bold, func(flags face.RasterizerFlags) (face.Face, bool) {
			return synthesizeBold(rFace, flags)
		}); err != nil {
			return err
		}
	}

	if c.Len(ghosttyfont.StyleBoldItalic) == 0 {
		switch {
		case boldHadUser:
			boldFace, err := c.resolveFace(ghosttyfont.StyleBold, 0)
			if err != nil {
				return err
			}
			if err := c.completeStyle(ghosttyfont.StyleBoldItalic, -1, cfg.BoldItalic, func(flags face.RasterizerFlags) (face.Face, bool) {
				return synthesizeItalic(boldFace, flags)
			}); err != nil {
				return err
			}
			if c.Len(ghosttyfont.StyleBoldItalic) == 0 {
				c.aliasTo(ghosttyfont.StyleBoldItalic, ghosttyfont.StyleItalic, 0)
			}
		case italicHadUser:
			italicFace, err := c.resolveFace(ghosttyfont.StyleItalic, 0)
			if err != nil {
				return err
			}
			if err := c.completeStyle(ghosttyfont.StyleBoldItalic, -1, cfg.BoldItalic, func(flags face.RasterizerFlags) (face.Face, bool) {
				return synthesizeBold(italicFace, flags)
			}); err != nil {
				return err
			}
			if c.Len(ghosttyfont.StyleBoldItalic) == 0 {
				c.aliasTo(ghosttyfont.StyleBoldItalic, ghosttyfont.StyleItalic, 0)
			}
		default:
			// Neither bold nor italic came from the user: both are
			// themselves either synthesised from R or aliased to it at
			// this point, so alias bold-italic straight to italic.
			// Aliases never point to aliases, so unwrap once if needed.
			c.aliasTo(ghosttyfont.StyleBoldItalic, ghosttyfont.StyleItalic, 0)
		}
	}

	return nil
}

// completeStyle fills style's (currently empty) entry list with either
// a synthesised variant of the source face or an Alias to sourceIdx in
// StyleRegular, per CompleteStyles' rule. sourceIdx is only used for
// the alias fallback; pass -1 when the caller will alias elsewhere
// itself on failure.
func (c *Collection) completeStyle(style ghosttyfont.Style, sourceIdx int, enabled bool, synth func(face.RasterizerFlags) (face.Face, bool)) error {
	if enabled {
		var flags face.RasterizerFlags
		if c.loadOpts != nil {
			flags = c.loadOpts.RasterizerFlags
		}
		if f, ok := synth(flags); ok {
			_, err := c.Add(style, NewLoadedEntry(f))
			return err
		}
	}
	if sourceIdx >= 0 {
		c.aliasTo(style, ghosttyfont.StyleRegular, sourceIdx)
	}
	return nil
}

// aliasTo appends an Alias entry in style pointing at (targetStyle,
// targetIdx), unwrapping once if the target is itself an Alias so
// aliases never chain.
func (c *Collection) aliasTo(style, targetStyle ghosttyfont.Style, targetIdx int) {
	list := c.styles[targetStyle]
	if targetIdx >= 0 && targetIdx < len(list) {
		if a, ok := list[targetIdx].(aliasEntry); ok {
			targetStyle, targetIdx = a.style, a.idx
		}
	}
	c.styles[style] = append(c.styles[style], aliasEntry{style: targetStyle, idx: targetIdx})
}

// findTextRegular returns the index of the first StyleRegular entry
// whose face is non-colour or contains a glyph for 'A'.
func (c *Collection) findTextRegular() (int, bool) {
	for idx := range c.styles[ghosttyfont.StyleRegular] {
		f, err := c.resolveFace(ghosttyfont.StyleRegular, idx)
		if err != nil {
			continue
		}
		if !f.HasColor() {
			return idx, true
		}
		if _, ok := f.GlyphIndex('A'); ok {
			return idx, true
		}
	}
	return 0, false
}

func synthesizeItalic(f face.Face, flags face.RasterizerFlags) (face.Face, bool) {
	si, ok := f.(face.SyntheticItaliciser)
	if !ok {
		return nil, false
	}
	return si.SyntheticItalic(flags)
}

func synthesizeBold(f face.Face, flags face.RasterizerFlags) (face.Face, bool) {
	sb, ok := f.(face.SyntheticBolder)
	if !ok {
		return nil, false
	}
	return sb.SyntheticBold(flags)
}
