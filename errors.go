//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"errors"

	"github.com/obinnaokechukwu/cbbridge/internal/bindings"
)

// Common errors. None of them are produced by creating, invoking, releasing
// or closing a callback; those operations cannot fail.
var (
	// ErrNullAddress indicates a descriptor field is zero.
	ErrNullAddress = errors.New("cbbridge: null function address")

	// ErrClosed indicates the resource has been closed.
	ErrClosed = errors.New("cbbridge: resource is closed")

	// ErrLibraryNotFound indicates no native library matched the given name.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrSymbolNotFound indicates a native library lacks the named export.
	ErrSymbolNotFound = bindings.ErrSymbolNotFound
)
