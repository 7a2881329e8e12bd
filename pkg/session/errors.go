package session

import "errors"

// Sentinel errors returned by Editor.
var (
	// ErrUnknownKey is returned by Press for keys without a binding.
	ErrUnknownKey = errors.New("unknown key")

	// ErrNoCursors is returned when an editor would be left without cursors.
	ErrNoCursors = errors.New("at least one cursor is required")

	// ErrOutOfRange is returned for cursor offsets outside the document.
	ErrOutOfRange = errors.New("cursor out of range")

	// ErrOverlappingRanges is returned for selections that overlap.
	ErrOverlappingRanges = errors.New("overlapping selections")
)
