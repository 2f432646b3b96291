package importfreq

import (
	"context"
	"errors"
)

// Sentinel errors for the failure cases a caller is expected to distinguish.
// Everything else is wrapped context around one of these or an ordinary
// unclassified error.
var (
	// ErrPathNotFound means the target path does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotDescriptor means the target is a file but not a recognized
	// descriptor (go.work or go.mod).
	ErrNotDescriptor = errors.New("not a go.work or go.mod file")

	// ErrNoDescriptor means a directory search found no descriptor file.
	ErrNoDescriptor = errors.New("no go.work or go.mod file found")

	// ErrNoToolchain means no go command could be located on the host, so
	// build evaluation cannot proceed at all.
	ErrNoToolchain = errors.New("go toolchain not found in PATH")
)

// Exit codes reported by ExitCode. Zero means success; each named failure
// gets its own small positive code. The specific values are not a
// compatibility contract, only their distinctness is.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitPathNotFound  = 2
	ExitNotDescriptor = 3
	ExitNoDescriptor  = 4
	ExitNoToolchain   = 5
	ExitCancelled     = 6
)

// ExitCode maps an error from a run to a process exit code. A nil error maps
// to ExitOK; unclassified errors map to ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, ErrNotDescriptor):
		return ExitNotDescriptor
	case errors.Is(err, ErrNoDescriptor):
		return ExitNoDescriptor
	case errors.Is(err, ErrNoToolchain):
		return ExitNoToolchain
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCancelled
	default:
		return ExitFailure
	}
}
