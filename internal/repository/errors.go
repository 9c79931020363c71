package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocument means a lookup matched nothing. It is a plain absence
	// signal, not a storage failure.
	ErrNoDocument = errors.New("repository: no matching document")
	// ErrDuplicateKey means an insert violated a unique index. Callers that
	// rely on the index for idempotency check for it with errors.Is.
	ErrDuplicateKey = errors.New("repository: duplicate key")
)

// StorageError wraps any failure coming out of the storage driver,
// including timeouts. Services never see raw driver errors.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("repository: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
