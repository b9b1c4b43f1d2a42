//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"runtime"
)

// Callback is the owning wrapper handed to callers. It owns exactly one
// Handle until it is closed or moved from, and it guarantees that handle's
// release function runs once: on Release, on Close, or, if the owner forgot
// both, when the garbage collector finalizes the Callback.
//
// Ownership is move-only. Copying a *Callback shares the same owner, it does
// not duplicate it; use Move to hand the handle to a new owner.
type Callback struct {
	h *Handle
}

// New creates a handle from raw addresses and wraps it. No callback fires.
func New(success, errorFn, release, ctx uintptr) *Callback {
	return Wrap(Create(success, errorFn, release, ctx))
}

// Wrap takes ownership of h. The caller must not use h directly afterwards.
// Wrap(nil) returns an empty Callback.
func Wrap(h *Handle) *Callback {
	c := &Callback{h: h}
	if h != nil {
		runtime.SetFinalizer(c, (*Callback).finalize)
	}
	return c
}

// Valid reports whether c still owns a handle.
func (c *Callback) Valid() bool {
	return c != nil && c.h != nil
}

// Released reports whether the owned handle has been released. An empty
// Callback counts as released.
func (c *Callback) Released() bool {
	if !c.Valid() {
		return true
	}
	defer runtime.KeepAlive(c)
	return c.h.Released()
}

// Descriptor returns the owned handle's addresses, or the zero Descriptor.
func (c *Callback) Descriptor() Descriptor {
	if !c.Valid() {
		return Descriptor{}
	}
	return c.h.Descriptor()
}

// Success forwards (a, b) to the success function.
func (c *Callback) Success(a, b string) {
	h := c.owned("Callback.Success")
	if h == nil {
		return
	}
	h.Success(a, b)
	runtime.KeepAlive(c)
}

// Error forwards a to the error function.
func (c *Callback) Error(a string) {
	h := c.owned("Callback.Error")
	if h == nil {
		return
	}
	h.Error(a)
	runtime.KeepAlive(c)
}

// Release runs the release function if it has not run yet. The Callback
// keeps owning the (now Released) handle until Close.
func (c *Callback) Release() {
	h := c.owned("Callback.Release")
	if h == nil {
		return
	}
	h.Release()
	runtime.KeepAlive(c)
}

// Close destroys the Callback: the handle is released if it is still Live
// and then dropped. Close is idempotent and always returns nil.
func (c *Callback) Close() error {
	if !c.Valid() {
		return nil
	}
	h := c.detach()
	h.Release()
	return nil
}

// Move transfers the handle to a new Callback and leaves c empty. Nothing is
// released. Moving an empty Callback yields another empty one.
func (c *Callback) Move() *Callback {
	if !c.Valid() {
		return &Callback{}
	}
	return Wrap(c.detach())
}

func (c *Callback) detach() *Handle {
	h := c.h
	c.h = nil
	runtime.SetFinalizer(c, nil)
	return h
}

// owned returns the handle, or nil after logging when c is empty. Calling
// through an empty Callback is a caller bug, but there is no handle left to
// forward to, so it is dropped.
func (c *Callback) owned(function string) *Handle {
	if c.Valid() {
		return c.h
	}
	logWith(function).Warn("call on closed or moved-from callback ignored")
	return nil
}

func (c *Callback) finalize() {
	h := c.h
	if h == nil {
		return
	}
	c.h = nil
	if !h.Released() {
		logWith("Callback.finalize").
			WithField("context", h.desc.Context).
			Warn("callback was never closed; releasing from finalizer")
	}
	h.Release()
}
