package objpath

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

var (
	ErrInvalidPath = errors.New("invalid path")
	errMissing     = errors.New("no value")
)

// PathError is returned when a write through a path fails. It matches
// ErrInvalidPath with errors.Is and unwraps to the underlying cause.
type PathError struct {
	Path    string
	Segment string
	Cause   error

	trace *goerrors.Error
}

func newPathError(path, seg string, cause error) *PathError {
	return &PathError{
		Path:    path,
		Segment: seg,
		Cause:   cause,
		trace:   goerrors.Wrap(cause, 2),
	}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q at %q: %v", ErrInvalidPath, e.Path, e.Segment, e.Cause)
}

func (e *PathError) Unwrap() error {
	return e.Cause
}

func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// ErrorStack gives the error followed by the stack of the failed write.
func (e *PathError) ErrorStack() string {
	if e.trace == nil {
		return e.Error()
	}
	return e.Error() + "\n" + string(e.trace.Stack())
}

func (e *PathError) StackFrames() []goerrors.StackFrame {
	if e.trace == nil {
		return nil
	}
	return e.trace.StackFrames()
}
