package error

import (
	"errors"
	"fmt"
)

const errFmt = "%s: %s"

// General-purpose errors.
var (
	ErrConfiguration         = errors.New("invalid configuration")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Error wrapper.
type Error struct {
	err error
	msg string
}

func (e Error) Error() string {
	return e.msg
}

// Unwrap returns the sentinel error e was constructed with.
func (e Error) Unwrap() error {
	return e.err
}

// IsConfiguration indicates if err is ErrConfiguration.
func IsConfiguration(err error) bool {
	return unwrapError(err) == ErrConfiguration
}

// IsDependencyUnavailable indicates if err is ErrDependencyUnavailable.
func IsDependencyUnavailable(err error) bool {
	return unwrapError(err) == ErrDependencyUnavailable
}

// Wrap constructs an Error with proper messaging.
func Wrap(err error, format string, args ...interface{}) error {
	return &Error{
		err: err,
		msg: fmt.Sprintf(
			errFmt,
			err, fmt.Sprintf(format, args...),
		),
	}
}

func unwrapError(err error) error {
	switch e := err.(type) {
	case *Error:
		return e.err
	}

	return err
}
