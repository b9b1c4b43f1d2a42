//go:build !ios && !android && (amd64 || arm64)

// Package platform knows how native libraries are named and where the system
// loader looks for them on each supported OS.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"
)

// Is64Bit reports whether uintptr is 8 bytes wide. Native addresses are
// carried as uintptr everywhere, and purego only supports 64-bit targets.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the shared library suffix for this OS.
var LibraryExtension string

// LibraryPrefix is the shared library file name prefix for this OS.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// IsPath reports whether name already looks like a file name or path rather
// than a bare library name such as "callbacks".
func IsPath(name string) bool {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return true
	}
	return strings.HasSuffix(name, LibraryExtension) || strings.Contains(name, LibraryExtension+".")
}

// LibraryFileName returns the platform file name for a bare library name.
//
//   - Linux:   LibraryFileName("callbacks") -> "libcallbacks.so"
//   - macOS:   LibraryFileName("callbacks") -> "libcallbacks.dylib"
//   - Windows: LibraryFileName("callbacks") -> "callbacks.dll"
//
// Names that already look like paths are returned unchanged.
func LibraryFileName(name string) string {
	if IsPath(name) {
		return name
	}
	return LibraryPrefix + name + LibraryExtension
}

// LoaderPaths returns the directories the system loader would consult, in
// the order it consults them: the loader environment variable first, then
// the usual install locations.
func LoaderPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "linux", "freebsd":
		if p := os.Getenv("LD_LIBRARY_PATH"); p != "" {
			paths = append(paths, filepath.SplitList(p)...)
		}
		paths = append(paths, "/usr/local/lib", "/usr/lib")
		switch runtime.GOARCH {
		case "amd64":
			paths = append(paths, "/usr/lib/x86_64-linux-gnu", "/lib/x86_64-linux-gnu")
		case "arm64":
			paths = append(paths, "/usr/lib/aarch64-linux-gnu", "/lib/aarch64-linux-gnu")
		}
		paths = append(paths, "/lib")

	case "darwin":
		if p := os.Getenv("DYLD_LIBRARY_PATH"); p != "" {
			paths = append(paths, filepath.SplitList(p)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
		)

	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if p := os.Getenv("PATH"); p != "" {
			paths = append(paths, filepath.SplitList(p)...)
		}
	}

	return paths
}
