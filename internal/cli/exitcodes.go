package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/gomdparse/internal/configloader"
	"github.com/yaklabco/gomdparse/pkg/fsutil"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

// Exit codes for gomdparse.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitParseErrors indicates that at least one input failed to parse.
	ExitParseErrors = 1

	// ExitFormatDiffers indicates that fmt --check found unformatted files,
	// or that check found outlines differing from goldmark's.
	ExitFormatDiffers = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors returned by commands and mapped to exit codes.
var (
	ErrParseErrors    = errors.New("some inputs failed to parse")
	ErrFormatDiffers  = errors.New("some files need formatting")
	ErrOutlinesDiffer = errors.New("some outlines differ from goldmark")
	ErrInvalidUsage   = errors.New("invalid usage")
	ErrConfig         = errors.New("configuration error")
	ErrIO             = errors.New("i/o error")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParseErrors), errors.Is(err, parser.ErrParse):
		return ExitParseErrors
	case errors.Is(err, ErrFormatDiffers), errors.Is(err, ErrOutlinesDiffer):
		return ExitFormatDiffers
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrIO),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsSignal reports whether err only signals an exit code and carries
// nothing worth logging.
func IsSignal(err error) bool {
	return errors.Is(err, ErrFormatDiffers) || errors.Is(err, ErrOutlinesDiffer) || errors.Is(err, ErrParseErrors)
}
