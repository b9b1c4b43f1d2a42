//go:build !ios && !android && (amd64 || arm64)

// Package handles maps Go values to integer ids that can cross into native
// code.
//
// Native code must never hold a Go pointer, so anything the foreign side
// refers to (a Callback handed to a C caller, the hooks behind a Go-side
// trampoline) is registered here and the id is passed instead. Ids start at 1;
// 0 is never issued and doubles as the "no handle" value on the C side.
package handles

import (
	"sync"
)

var (
	mu      sync.RWMutex
	entries = make(map[uintptr]any)
	nextID  uintptr = 1
)

// Register stores v and returns its id.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	entries[id] = v
	return id
}

// Lookup returns the value registered under id, or nil.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return entries[id]
}

// Take removes id from the table and returns what was stored there.
// Of several concurrent Take calls on the same id exactly one gets the
// value; the rest get nil. This is how ownership leaves the table.
func Take(id uintptr) any {
	mu.Lock()
	defer mu.Unlock()
	v, ok := entries[id]
	if !ok {
		return nil
	}
	delete(entries, id)
	return v
}

// Unregister drops id without returning the value.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}

// Count returns the number of live ids. Tests use it to spot leaks.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}
