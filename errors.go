package ghosttyfont

import "errors"

// Sentinel errors for the font core. Most of these are swallowed inside
// CodepointResolver.Resolve (which never returns an error to its
// caller) and surface only through the package logger; the exceptions
// are noted per-error below.
var (
	// ErrCollectionFull is returned by Collection.Add when a style
	// already holds SpecialStart entries. Propagated to the caller.
	ErrCollectionFull = errors.New("ghosttyfont: collection is full for this style")

	// ErrDeferredLoadingUnavailable is returned when a Deferred entry
	// exists but the Collection has no LoadOptions to promote it with.
	// Propagated during construction/debugging only.
	ErrDeferredLoadingUnavailable = errors.New("ghosttyfont: deferred entry present without load options")

	// ErrSpecialHasNoFace is returned by Collection.GetFace when called
	// on the sprite index; this is a programming error, not a runtime
	// condition.
	ErrSpecialHasNoFace = errors.New("ghosttyfont: GetFace called on a special (non-backed) index")

	// ErrAtlasFull is returned by Atlas.Reserve when no room remains.
	// Recoverable inside SharedGrid by growing and retrying once.
	ErrAtlasFull = errors.New("ghosttyfont: atlas has no room for the requested region")

	// ErrLoadFailed is returned by a Rasterizer or Face when
	// rasterization fails. Logged and treated as "not matching" inside
	// the resolution algorithm; surfaced to the shaper for the specific
	// glyph that failed to render.
	ErrLoadFailed = errors.New("ghosttyfont: face or glyph failed to load")

	// ErrFontNotFound names the "no font matched a descriptor" outcome.
	// The Discoverer interface reports that outcome as an empty
	// sequence, so no code in this module returns this error.
	ErrFontNotFound = errors.New("ghosttyfont: no font matched the descriptor")

	// ErrDefaultUnavailable is returned by Collection.CompleteStyles
	// when no eligible regular entry exists to complete styles from.
	// Propagated.
	ErrDefaultUnavailable = errors.New("ghosttyfont: no eligible regular face to complete styles from")
)
