package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// ErrEmptyPath is returned by operations that need a concrete path.
var ErrEmptyPath = errors.New("path is empty")

// Kind is a coarse-grained categorization for path operation failures.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindPermissionDenied Kind = "permission_denied"
	KindIOError          Kind = "io_error"
	KindUnexpected       Kind = "unexpected"
)

// Operation names attached to errors, log entries and metrics.
const (
	OpExists          = "exists"
	OpExistsAt        = "existsAt"
	OpStat            = "stat"
	OpCurrentPath     = "currentPath"
	OpSafeCurrentPath = "safeCurrentPath"
	OpMakeCurrentPath = "makeCurrentPath"
	OpEnsureDirectory = "ensureDirectory"
	OpCreateDirectory = "createDirectory"
	OpCanonicalize    = "canonicalize"
)

// Error is the failure value of every fallible path operation.
type Error struct {
	Kind   Kind
	Op     string
	Path   string        // the path the operation was invoked on
	Target string        // target-dir, set by CreateDirectory
	Code   syscall.Errno // native OS error code, 0 when unknown
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s", e.Path)
		if e.Target != "" {
			base += fmt.Sprintf(", target-dir=%s", e.Target)
		}
		base += ")"
	} else if e.Target != "" {
		base += fmt.Sprintf(" (target-dir=%s)", e.Target)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a path *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// newError classifies err and attaches operation context.
func newError(op, path string, err error) *Error {
	e := &Error{Op: op, Path: path, Err: err}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = errno
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.Kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		e.Kind = KindPermissionDenied
	case isOSError(err):
		e.Kind = KindIOError
	default:
		e.Kind = KindUnexpected
	}
	return e
}

// isOSError reports whether err originated in an OS call.
func isOSError(err error) bool {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
		errno      syscall.Errno
	)
	return errors.As(err, &pathErr) ||
		errors.As(err, &linkErr) ||
		errors.As(err, &syscallErr) ||
		errors.As(err, &errno)
}
