package cli

import (
	"errors"

	"github.com/yaklabco/topview/pkg/fsutil"
	"github.com/yaklabco/topview/pkg/parm"
)

// Exit codes for topview, following BSD sysexits conventions.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNotFound indicates the query matched nothing.
	ExitNotFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates malformed topology input.
	ExitDataError = 65

	// ExitNoInput indicates a missing input file.
	ExitNoInput = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, fsutil.ErrNotFound) {
		return ExitNoInput
	}
	if errors.Is(err, fsutil.ErrBadGzip) {
		return ExitDataError
	}
	switch parm.CodeOf(err) {
	case parm.CodeInvalidInput:
		return ExitInvalidUsage
	case parm.CodeFormat:
		return ExitDataError
	case parm.CodeNotFound:
		return ExitNotFound
	case parm.CodeNotLoaded:
		return ExitInternalError
	}
	return ExitIOError
}
