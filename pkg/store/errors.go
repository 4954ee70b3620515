package store

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound marks an operation on an id the relevant collection does
	// not hold. Mutations treat it as a silent no-op.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidArgument marks a request that can never succeed, such as
	// tombstoning an id that is not in the catalog.
	ErrInvalidArgument = errors.New("store: invalid argument")

	// ErrPersistence marks a failure of the underlying key-value substrate.
	ErrPersistence = errors.New("store: persistence failure")
)

// PersistenceError reports a read or write the substrate rejected. The
// record named by Key keeps its previous durable value.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is matches ErrPersistence so callers need not know the concrete type.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// IsMissing reports whether err means the key has never been written.
func IsMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
