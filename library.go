//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/cbbridge/internal/bindings"
)

// Library is a native shared library that exports callback functions.
type Library struct {
	mu     sync.Mutex
	lib    uintptr
	path   string
	closed bool
}

// OpenLibrary loads a native library by bare name ("callbacks") or path.
// Bare names are searched in Config.LibraryPath first, then in the system
// loader locations.
func OpenLibrary(name string) (*Library, error) {
	cfg := CurrentConfig()

	lib, path, err := bindings.Open(name, cfg.LibraryPath)
	if err != nil {
		logWith("OpenLibrary").WithField("name", name).WithError(err).Debug("library not loaded")
		return nil, err
	}

	logWith("OpenLibrary").WithField("path", path).Debug("library loaded")
	return &Library{lib: lib, path: path}, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Symbol returns the address of an exported function.
func (l *Library) Symbol(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, ErrClosed
	}
	return bindings.Symbol(l.lib, name)
}

// Descriptor resolves the three named functions and pairs them with ctx.
func (l *Library) Descriptor(success, errorFn, release string, ctx uintptr) (Descriptor, error) {
	var d Descriptor
	var err error

	if d.Success, err = l.Symbol(success); err != nil {
		return Descriptor{}, fmt.Errorf("resolving success function: %w", err)
	}
	if d.Error, err = l.Symbol(errorFn); err != nil {
		return Descriptor{}, fmt.Errorf("resolving error function: %w", err)
	}
	if d.Release, err = l.Symbol(release); err != nil {
		return Descriptor{}, fmt.Errorf("resolving release function: %w", err)
	}
	d.Context = ctx

	return d, nil
}

// Close unloads the library. Callbacks built from its symbols must have been
// released first. Close is idempotent.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	err := bindings.Close(l.lib)
	l.lib = 0
	return err
}
