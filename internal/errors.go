package internal

import "errors"

var (
	ErrMissingInput      = errors.New("file does not exist")
	ErrMalformedLine     = errors.New("missing one or more fields in parameter definition")
	ErrDuplicateName     = errors.New("parameter already defined")
	ErrInvalidInvocation = errors.New("invalid calling sequence")
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError pairs an error with the process exit status it should produce.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, ErrMissingInput), errors.Is(err, ErrInvalidInvocation):
		return ExitUsage
	}
	return ExitFailure
}
