//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

// call is one observed invocation of a native test function.
type call struct {
	Kind string
	Ctx  uintptr
	A, B string
}

// Native side used by the tests: three C-callable functions that record what
// they receive. They are created once because purego callbacks are never
// freed.
var (
	nativeOnce    sync.Once
	nativeSuccess uintptr
	nativeError   uintptr
	nativeRelease uintptr

	recordMu sync.Mutex
	recorded []call

	contextSeq atomic.Uintptr
)

func nativeAddrs() (success, errorFn, release uintptr) {
	nativeOnce.Do(func() {
		nativeSuccess = purego.NewCallback(func(ctx uintptr, a *byte, alen uintptr, b *byte, blen uintptr) {
			record(call{Kind: "success", Ctx: ctx, A: bytesToString(a, alen), B: bytesToString(b, blen)})
		})
		nativeError = purego.NewCallback(func(ctx uintptr, a *byte, alen uintptr) {
			record(call{Kind: "error", Ctx: ctx, A: bytesToString(a, alen)})
		})
		nativeRelease = purego.NewCallback(func(ctx uintptr) {
			record(call{Kind: "release", Ctx: ctx})
		})
	})
	return nativeSuccess, nativeError, nativeRelease
}

// nextContext returns a context value no other test uses, so recordings can
// be told apart.
func nextContext() uintptr {
	return 0x10000 + contextSeq.Add(1)
}

func record(c call) {
	recordMu.Lock()
	recorded = append(recorded, c)
	recordMu.Unlock()
}

func callsFor(ctx uintptr) []call {
	recordMu.Lock()
	defer recordMu.Unlock()
	var out []call
	for _, c := range recorded {
		if c.Ctx == ctx {
			out = append(out, c)
		}
	}
	return out
}

func countFor(ctx uintptr, kind string) int {
	n := 0
	for _, c := range callsFor(ctx) {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func bytesToString(p *byte, n uintptr) string {
	if p == nil || n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}

// newTestCallback builds a Callback on the recording native side.
func newTestCallback(ctx uintptr) *Callback {
	s, e, r := nativeAddrs()
	return New(s, e, r, ctx)
}
