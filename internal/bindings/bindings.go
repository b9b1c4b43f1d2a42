//go:build !ios && !android && (amd64 || arm64)

// Package bindings opens native libraries with purego and resolves exported
// symbols to raw addresses.
//
// Nothing here knows about callbacks; it only turns a library name plus a
// symbol name into a uintptr that the bridge can store in a Descriptor.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/cbbridge/internal/platform"
)

// ErrLibraryNotFound is returned when no candidate path could be opened.
var ErrLibraryNotFound = errors.New("cbbridge: native library not found")

// ErrSymbolNotFound is returned when a library does not export a symbol.
var ErrSymbolNotFound = errors.New("cbbridge: symbol not found")

// Open loads a library by bare name or path.
//
// A bare name is expanded with platform.LibraryFileName and looked up in
// dirs, then in platform.LoaderPaths, then handed to the system loader as-is.
// A path is opened directly. It returns the library handle and the path that
// was actually opened.
func Open(name string, dirs []string) (uintptr, string, error) {
	if name == "" {
		return 0, "", fmt.Errorf("%w: empty name", ErrLibraryNotFound)
	}

	fileName := platform.LibraryFileName(name)

	if platform.IsPath(name) && filepath.IsAbs(name) {
		lib, err := tryOpen(name)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, name, err)
		}
		return lib, name, nil
	}

	var searched []string
	for _, dir := range append(append([]string(nil), dirs...), platform.LoaderPaths()...) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, fileName)
		searched = append(searched, full)
		if _, err := os.Stat(full); err != nil {
			continue
		}
		if lib, err := tryOpen(full); err == nil {
			return lib, full, nil
		}
	}

	// Let the system loader have a go (handles ld.so.cache, rpath, etc).
	lib, err := tryOpen(fileName)
	if err == nil {
		return lib, fileName, nil
	}

	return 0, "", fmt.Errorf("%w: %s (searched %d paths): %v", ErrLibraryNotFound, name, len(searched), err)
}

// Symbol resolves name in lib.
func Symbol(lib uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrSymbolNotFound, name, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	return addr, nil
}

// Close unloads lib. Addresses resolved from it must not be called afterwards.
func Close(lib uintptr) error {
	if lib == 0 {
		return nil
	}
	return purego.Dlclose(lib)
}

// tryOpen opens with RTLD_NOW so missing dependencies fail here rather than
// at the first callback invocation.
func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}
