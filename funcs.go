//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/cbbridge/internal/handles"
)

// Funcs is a callback implemented in Go. Its Descriptor has C-callable
// addresses, so it can be handed to native code like any other callback.
// Nil hooks are skipped.
type Funcs struct {
	OnSuccess func(a, b string)
	OnError   func(a string)
	OnRelease func()
}

// One set of trampolines serves every Funcs; purego can only create a
// limited number of callbacks per process. The context routes each call to
// its Funcs through the handles table.
var (
	trampolinesOnce   sync.Once
	successTrampoline uintptr
	errorTrampoline   uintptr
	releaseTrampoline uintptr
)

func initTrampolines() {
	trampolinesOnce.Do(func() {
		// void success(uintptr_t ctx, const char *a, size_t alen, const char *b, size_t blen)
		successTrampoline = purego.NewCallback(func(ctx uintptr, a *byte, alen uintptr, b *byte, blen uintptr) {
			f := lookupFuncs(ctx)
			if f == nil || f.OnSuccess == nil {
				return
			}
			f.OnSuccess(copyPayload(a, alen), copyPayload(b, blen))
		})

		// void error(uintptr_t ctx, const char *a, size_t alen)
		errorTrampoline = purego.NewCallback(func(ctx uintptr, a *byte, alen uintptr) {
			f := lookupFuncs(ctx)
			if f == nil || f.OnError == nil {
				return
			}
			f.OnError(copyPayload(a, alen))
		})

		// void release(uintptr_t ctx)
		releaseTrampoline = purego.NewCallback(func(ctx uintptr) {
			f, _ := handles.Take(ctx).(*Funcs)
			if f == nil {
				logWith("Funcs.release").
					WithField("context", ctx).
					Warn("release for unknown Go callback context")
				return
			}
			if f.OnRelease != nil {
				f.OnRelease()
			}
		})
	})
}

// Descriptor registers a copy of f and returns addresses that call into it.
// The registration lives until the descriptor's release function runs, so
// the descriptor must end up in a Handle that is eventually released.
func (f Funcs) Descriptor() Descriptor {
	initTrampolines()
	hooks := f
	return Descriptor{
		Success: successTrampoline,
		Error:   errorTrampoline,
		Release: releaseTrampoline,
		Context: handles.Register(&hooks),
	}
}

// NewFuncs wraps Go hooks in a Callback.
func NewFuncs(f Funcs) *Callback {
	return Wrap(CreateFromDescriptor(f.Descriptor()))
}

func lookupFuncs(ctx uintptr) *Funcs {
	f, _ := handles.Lookup(ctx).(*Funcs)
	return f
}

// copyPayload copies native bytes into a Go string; the native memory is
// only valid for the duration of the call.
func copyPayload(p *byte, n uintptr) string {
	if p == nil || n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}
