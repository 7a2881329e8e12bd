package cli

import (
	"errors"

	"github.com/yaklabco/blockcont/internal/configloader"
)

// Exit codes for blockcont.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates failed replay scripts or a runtime error.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInvalidPosition), errors.Is(err, ErrUnknownLanguage):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitFailure
	}
}
