package store

import (
	"errors"
	"fmt"
)

// StorageError indicates the persistence layer failed: unreachable database,
// broken transaction, or a constraint violation. Callers treat it as an
// infrastructure problem, distinct from bad input.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotFoundError indicates an operation referenced a project or node that
// does not exist.
type NotFoundError struct {
	Kind string // "project" or "node"
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
