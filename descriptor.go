//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import "fmt"

// Descriptor is the raw material of a callback: three native function
// addresses and the context value passed to each of them.
//
// A Descriptor is a plain value. The bridge copies it into a Handle at
// creation and never changes it afterwards.
type Descriptor struct {
	Success uintptr // void (*)(uintptr_t ctx, const char *a, size_t alen, const char *b, size_t blen)
	Error   uintptr // void (*)(uintptr_t ctx, const char *a, size_t alen)
	Release uintptr // void (*)(uintptr_t ctx)

	// Context is handed verbatim to every call. The bridge never
	// dereferences it; whatever it points to must outlive the handle.
	Context uintptr
}

// NewDescriptor groups the four raw values the way Create expects them.
func NewDescriptor(success, errorFn, release, ctx uintptr) Descriptor {
	return Descriptor{
		Success: success,
		Error:   errorFn,
		Release: release,
		Context: ctx,
	}
}

// Validate reports a zero function address. It is a convenience for layers
// that accept addresses from outside; Create does not call it. A zero context
// is legal.
func (d Descriptor) Validate() error {
	switch {
	case d.Success == 0:
		return fmt.Errorf("%w: success", ErrNullAddress)
	case d.Error == 0:
		return fmt.Errorf("%w: error", ErrNullAddress)
	case d.Release == 0:
		return fmt.Errorf("%w: release", ErrNullAddress)
	}
	return nil
}
