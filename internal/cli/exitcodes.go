package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
)

// Exit codes for gomdhtml.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFindings indicates the command completed but found warnings that
	// fail the run, or golden files that differ.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrWarningsFound is returned by check and render when reported warnings fail the run.
	ErrWarningsFound = errors.New("warnings found")

	// ErrGoldenMismatch is returned by verify when rendered HTML differs from a golden file.
	ErrGoldenMismatch = errors.New("golden files differ")

	// ErrUsage marks invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration that could not be loaded or validated.
	ErrConfig = errors.New("load configuration")
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrWarningsFound), errors.Is(err, ErrGoldenMismatch):
		return ExitFindings
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case isIOError(err):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsFindingsError reports whether err only signals findings and needs no log line.
func IsFindingsError(err error) bool {
	return errors.Is(err, ErrWarningsFound) || errors.Is(err, ErrGoldenMismatch)
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) ||
		errors.Is(err, fsutil.ErrTooLarge)
}
