package core

import (
	"errors"
	"fmt"
)

const errFmt = "%s: %s"

// Common errors
var (
	ErrHostUnresolved = errors.New("host unresolved")
)

// Error is a wraper used to transport core specific errors.
type Error struct {
	Err error
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// IsHostUnresolved indicates if err is ErrHostUnresolved.
func IsHostUnresolved(err error) bool {
	return unwrapError(err) == ErrHostUnresolved
}

func unwrapError(err error) error {
	switch e := err.(type) {
	case *Error:
		return e.Err
	}

	return err
}

func wrapError(err error, format string, args ...interface{}) error {
	return &Error{
		Err: err,
		Msg: fmt.Sprintf(
			errFmt,
			err.Error(),
			fmt.Sprintf(format, args...),
		),
	}
}
