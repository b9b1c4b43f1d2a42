//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Handle owns a Descriptor and the one-shot released state.
//
// A Handle is Live from Create until its release function has run, then
// Released for good. Release is the only transition; a second Release, from
// whatever path, does nothing.
//
// Success and Error are not checked against the released state: calling them
// after Release forwards to a context the native side may already have freed.
// Handles are not safe for concurrent invocation; confine each one to a
// single goroutine or lock around it.
type Handle struct {
	desc     Descriptor
	released atomic.Bool
}

// Create stores the four raw values in a new Live handle. It calls nothing
// and validates nothing.
func Create(success, errorFn, release, ctx uintptr) *Handle {
	return CreateFromDescriptor(NewDescriptor(success, errorFn, release, ctx))
}

// CreateFromDescriptor is Create for an assembled Descriptor.
func CreateFromDescriptor(d Descriptor) *Handle {
	logDebugContext("Create", d.Context, "callback handle created")
	return &Handle{desc: d}
}

// Descriptor returns the addresses the handle was created with.
func (h *Handle) Descriptor() Descriptor {
	return h.desc
}

// Success calls the success function with (context, a, b).
func (h *Handle) Success(a, b string) {
	pa, pb := unsafe.StringData(a), unsafe.StringData(b)
	purego.SyscallN(h.desc.Success,
		h.desc.Context,
		payloadPtr(pa, len(a)), uintptr(len(a)),
		payloadPtr(pb, len(b)), uintptr(len(b)),
	)
	runtime.KeepAlive(pa)
	runtime.KeepAlive(pb)
}

// Error calls the error function with (context, a).
func (h *Handle) Error(a string) {
	pa := unsafe.StringData(a)
	purego.SyscallN(h.desc.Error,
		h.desc.Context,
		payloadPtr(pa, len(a)), uintptr(len(a)),
	)
	runtime.KeepAlive(pa)
}

// Release calls the release function with (context) the first time it is
// called and marks the handle Released. Later calls return immediately.
func (h *Handle) Release() {
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	purego.SyscallN(h.desc.Release, h.desc.Context)
	logDebugContext("Release", h.desc.Context, "callback released")
}

// Released reports whether the release function has run.
func (h *Handle) Released() bool {
	return h.released.Load()
}

// payloadPtr maps empty payloads to NULL; unsafe.StringData of an empty
// string is unspecified.
func payloadPtr(p *byte, n int) uintptr {
	if n == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(p))
}
