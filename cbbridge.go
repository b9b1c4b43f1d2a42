//go:build !ios && !android && (amd64 || arm64)

// Package cbbridge lets native code and Go hand callbacks to each other
// without cgo.
//
// A callback is three native function addresses (success, error, release)
// plus an opaque context value. The bridge stores them, forwards string
// payloads to them, and guarantees the release function runs exactly once no
// matter whether the owner releases explicitly, closes the wrapper, or simply
// drops it and lets the garbage collector finalize it.
//
// The native signatures are:
//
//	void success(uintptr_t ctx, const char *a, size_t alen, const char *b, size_t blen);
//	void error(uintptr_t ctx, const char *a, size_t alen);
//	void release(uintptr_t ctx);
//
// Payload bytes are not NUL terminated and are only valid for the duration of
// the call. An empty payload is passed as (NULL, 0).
//
// Basic usage:
//
//	cb := cbbridge.New(okAddr, errAddr, dropAddr, ctx)
//	defer cb.Close()
//
//	cb.Success("foo", "bar")
//	cb.Error("boom")
//
// Nothing in the core validates addresses. Passing an address that is not a
// function with the signature above is undefined behavior, exactly as it
// would be in C.
package cbbridge

// Init reads configuration from the environment and applies it.
// It is safe to call multiple times.
func Init() error {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}
	Configure(cfg)
	return nil
}
