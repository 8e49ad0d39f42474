package cli

import (
	"errors"

	"github.com/yaklabco/pystylecheck/pkg/lint"
	"github.com/yaklabco/pystylecheck/pkg/runner"
)

// Exit codes for pystylecheck. The non-zero values follow sysexits(3).
const (
	// ExitSuccess indicates a completed run (diagnostics do not change it
	// unless --strict is set).
	ExitSuccess = 0

	// ExitFailure indicates that at least one file could not be analysed,
	// or that issues were found in strict mode.
	ExitFailure = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates a missing input path or an unreadable file.
	ExitIOError = 74
)

var (
	// ErrConfig marks configuration loading and validation failures.
	ErrConfig = errors.New("configuration error")

	// ErrIssuesFound is returned in strict mode when any diagnostic was reported.
	ErrIssuesFound = errors.New("style issues found")

	// ErrFilesFailed is returned after reporting when some files could not be analysed.
	ErrFilesFailed = errors.New("some files could not be analysed")
)

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, runner.ErrPathNotFound),
		errors.Is(err, lint.ErrFileNotFound),
		errors.Is(err, lint.ErrPermissionDenied):
		return ExitIOError
	case errors.Is(err, ErrFilesFailed),
		errors.Is(err, ErrIssuesFound),
		errors.Is(err, lint.ErrParseFailure):
		return ExitFailure
	default:
		return ExitInternalError
	}
}

// IsReported returns true when err only signals an outcome that has already
// been written to the output streams.
func IsReported(err error) bool {
	return errors.Is(err, ErrIssuesFound) || errors.Is(err, ErrFilesFailed)
}
