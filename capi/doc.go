//go:build cgo && !ios && !android && (amd64 || arm64)

// Package main exports the callback bridge to C callers.
//
// # Build Instructions
//
//	go build -buildmode=c-shared -o libcbbridge.so ./capi/
//
// This generates libcbbridge.so and libcbbridge.h.
//
// # C API Usage
//
//	void on_ok(uintptr_t ctx, const char *a, size_t alen, const char *b, size_t blen);
//	void on_err(uintptr_t ctx, const char *a, size_t alen);
//	void on_drop(uintptr_t ctx);
//
//	uintptr_t cb = cb_create((uintptr_t)on_ok, (uintptr_t)on_err, (uintptr_t)on_drop, (uintptr_t)state);
//	if (cb == 0) {
//	    // a function address was NULL
//	}
//
//	cb_call_ok(cb, (GoUint8 *)"foo", 3, (GoUint8 *)"bar", 3);
//	cb_call_err(cb, (GoUint8 *)"boom", 4);
//	cb_call_drop(cb);  // on_drop(state) runs here
//	cb_free(cb);       // already released: nothing runs
//
// cb_free on a callback that was never dropped runs on_drop first. Either way
// on_drop runs exactly once per cb_create.
//
// # Handles
//
// The value returned by cb_create is an integer id, not a pointer. Ids are
// never reused within a process; ids that are unknown (never issued, or
// already freed) are logged and ignored.
//
// # Thread Safety
//
// The id table is safe to use from any thread. A single callback is not:
// calls on the same id must not overlap.
package main
