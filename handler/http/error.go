package http

import (
	"errors"
	"fmt"

	"github.com/tapglue/hitcounter/core"
	serr "github.com/tapglue/hitcounter/error"
)

// Errors used for protocol control flow.
var (
	ErrNotFound = errors.New("not found")
)

// Error codes reported back to clients.
const (
	codeUnknown               = 5000
	codeDependencyUnavailable = 5100
	codeHostUnresolved        = 5101
	codeRouteNotFound         = 4004
)

// Error is used to carry additional error informaiton reported back to clients.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errorCode(err error) int {
	switch {
	case serr.IsDependencyUnavailable(err):
		return codeDependencyUnavailable
	case core.IsHostUnresolved(err):
		return codeHostUnresolved
	}

	return codeUnknown
}

func wrapError(err error, msg string) *Error {
	return &Error{
		Err:     err,
		Message: fmt.Sprintf("%s: %s", err.Error(), msg),
	}
}

func unwrapError(err error) error {
	switch e := err.(type) {
	case *Error:
		return e.Err
	case *core.Error:
		return e.Err
	}

	return err
}
