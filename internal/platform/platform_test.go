//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestIs64Bit(t *testing.T) {
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryFileName(t *testing.T) {
	var want string
	switch runtime.GOOS {
	case "darwin":
		want = "libcallbacks.dylib"
	case "windows":
		want = "callbacks.dll"
	default:
		want = "libcallbacks.so"
	}

	if got := LibraryFileName("callbacks"); got != want {
		t.Errorf("LibraryFileName(callbacks) = %q, want %q", got, want)
	}
}

func TestLibraryFileNameKeepsPaths(t *testing.T) {
	tests := []string{
		filepath.Join("build", "out", "libcallbacks"+LibraryExtension),
		"libcallbacks" + LibraryExtension,
		"/opt/lib/libcb.so.1",
	}
	for _, name := range tests {
		if got := LibraryFileName(name); got != name {
			t.Errorf("LibraryFileName(%q) = %q, want it unchanged", name, got)
		}
	}
}

func TestIsPath(t *testing.T) {
	if IsPath("callbacks") {
		t.Error("bare name reported as path")
	}
	if !IsPath("./callbacks") {
		t.Error("relative path not reported as path")
	}
}

func TestLoaderPathsHonoursEnv(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("LD_LIBRARY_PATH only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("LD_LIBRARY_PATH", dir)

	paths := LoaderPaths()
	if len(paths) == 0 || paths[0] != dir {
		t.Errorf("LoaderPaths()[0] = %v, want %q first", paths, dir)
	}
}
