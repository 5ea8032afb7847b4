// Package plugin defines the storage medium resources are loaded from.
package plugin

import (
	"errors"
	"io"
)

var ErrNotFound = errors.New("file not found")

// NotFoundError wraps the storage error for a missing resource. It
// matches ErrNotFound and keeps the original error in the chain.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return ErrNotFound.Error() + ": " + e.Err.Error()
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// FS is a named-resource store. Open must report a missing resource
// with an error that wraps ErrNotFound.
type FS interface {
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	CreateDir(path string) error
}
