package pg

import (
	"errors"

	"github.com/lib/pq"
)

// DefaultNamespace identifies the schema used when no counter namespace is
// configured.
const DefaultNamespace = "hitcounter"

// URLTest is the connection URL template used by integration tests, the
// placeholder is filled with the current OS user.
const URLTest = "postgres://%s@127.0.0.1:5432/hitcounter_test?sslmode=disable&connect_timeout=5"

// Postgres error codes we react to.
const (
	codeInvalidSchemaName = "3F000"
	codeUndefinedTable    = "42P01"
)

// ErrRelationNotFound is returned as equivalent to the Postgres error.
var ErrRelationNotFound = errors.New("relation not found")

// IsRelationNotFound indicates if err is ErrRelationNotFound.
func IsRelationNotFound(err error) bool {
	return err == ErrRelationNotFound
}

// Namespace returns the schema to use for ns.
func Namespace(ns string) string {
	if ns == "" {
		return DefaultNamespace
	}

	return ns
}

// WrapError check the given error if it indicates that the relation or its
// schema wasn't present, otherwise returns the original error.
func WrapError(err error) error {
	if err, ok := err.(*pq.Error); ok {
		switch err.Code {
		case codeInvalidSchemaName, codeUndefinedTable:
			return ErrRelationNotFound
		}
	}

	return err
}
