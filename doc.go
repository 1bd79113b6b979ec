// Package ghosttyfont implements the font resolution and glyph caching
// core of a terminal emulator's text rendering subsystem.
//
// Given a Unicode scalar value, a logical style (regular/bold/italic/
// bold-italic) and an optional presentation hint (text vs. emoji), the
// core answers two questions: which font face among a prioritised
// collection of user and fallback fonts (plus a synthetic "sprite" face)
// should render the codepoint, and what is the rasterised glyph bitmap
// and placement metadata for a resolved (face, glyph-id) pair.
//
// The package is split across:
//
//   - atlas: the shared texture atlas glyphs are packed into.
//   - face: the Face/DeferredFace contracts and a reference rasterizer.
//   - otfont: binary parsers for the sfnt tables Metrics is derived from.
//   - sprite: the procedural box-drawing/Braille/sextant face.
//   - collection: ordered per-style font lists with deferred loading.
//   - resolver: the codepoint resolution algorithm.
//   - discovery: the font-discovery adapter contract.
//   - grid: SharedGrid, the thread-safe cache+atlas binding.
//   - gridset: SharedGridSet, the refcounted registry keyed by config.
//
// This root package holds the types shared across all of the above:
// Style, Presentation, PresentationMode, Glyph, Metrics, FaceIndex, and
// the error taxonomy.
package ghosttyfont
