package commands

import (
	"fmt"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

// Error codes carried by ComplexError. The orchestrator maps each one to a
// user-facing message.
const (
	// ConfigError means the environment can't be used, e.g. there is no home directory
	ConfigError = iota + 1
	// NotFound means there is no stored entry for the requested server
	NotFound
	// MalformedInput means what we read from stdin can't be understood
	MalformedInput
	// SubprocessError means the password store executable couldn't be found, started or fed
	SubprocessError
	// FilesystemError means reading or removing part of the store failed
	FilesystemError
	// EncodingError means some bytes weren't valid base64url or UTF-8
	EncodingError
)

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    int
	err     error
	frame   xerrors.Frame
}

// NewError returns a ComplexError with the given code and formatted message
func NewError(code int, format string, args ...interface{}) error {
	return ComplexError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// WrapErrorWithCode gives err a code, keeping it reachable through Unwrap.
// A nil err stays nil.
func WrapErrorWithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return ComplexError{
		Message: err.Error(),
		Code:    code,
		err:     err,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%d %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return ce.Message
}

// Unwrap returns the error this one was created from, if any
func (ce ComplexError) Unwrap() error {
	return ce.err
}

// HasErrorCode tells us whether err, or anything it wraps, is a ComplexError with the given code
func HasErrorCode(err error, code int) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}

// ErrorCode returns the code of the outermost ComplexError in err's chain, or 0
func ErrorCode(err error) int {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code
	}
	return 0
}
