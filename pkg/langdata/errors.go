package langdata

import "errors"

// Sentinel errors for language registration.
var (
	// ErrNoName is returned when registering a language without a name.
	ErrNoName = errors.New("language has no name")

	// ErrIncompleteBlock is returned when a block comment has only one delimiter.
	ErrIncompleteBlock = errors.New("block comment needs both open and close delimiters")
)
