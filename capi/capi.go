//go:build cgo && !ios && !android && (amd64 || arm64)

package main

import "C"

import (
	"unsafe"

	"github.com/obinnaokechukwu/cbbridge"
	"github.com/obinnaokechukwu/cbbridge/internal/handles"
	"github.com/sirupsen/logrus"
)

func main() {} // Required for c-shared build mode

func init() {
	if err := cbbridge.Init(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "init",
			"error":    err.Error(),
		}).Warn("Ignoring invalid bridge configuration")
	}
}

//export cb_create
func cb_create(ok, err, drop, data uintptr) uintptr {
	d := cbbridge.NewDescriptor(ok, err, drop, data)
	if verr := d.Validate(); verr != nil {
		logrus.WithFields(logrus.Fields{
			"function": "cb_create",
			"error":    verr.Error(),
		}).Error("Rejected callback with null function address")
		return 0
	}

	return handles.Register(cbbridge.Wrap(cbbridge.CreateFromDescriptor(d)))
}

//export cb_call_ok
func cb_call_ok(id uintptr, a *byte, alen uintptr, b *byte, blen uintptr) {
	cb := lookup("cb_call_ok", id)
	if cb == nil {
		return
	}
	cb.Success(borrowString(a, alen), borrowString(b, blen))
}

//export cb_call_err
func cb_call_err(id uintptr, a *byte, alen uintptr) {
	cb := lookup("cb_call_err", id)
	if cb == nil {
		return
	}
	cb.Error(borrowString(a, alen))
}

//export cb_call_drop
func cb_call_drop(id uintptr) {
	cb := lookup("cb_call_drop", id)
	if cb == nil {
		return
	}
	cb.Release()
}

//export cb_free
func cb_free(id uintptr) {
	cb, _ := handles.Take(id).(*cbbridge.Callback)
	if cb == nil {
		logUnknown("cb_free", id)
		return
	}
	cb.Close()
}

//export cb_released
func cb_released(id uintptr) int32 {
	cb, _ := handles.Lookup(id).(*cbbridge.Callback)
	if cb == nil || cb.Released() {
		return 1
	}
	return 0
}

func lookup(function string, id uintptr) *cbbridge.Callback {
	cb, _ := handles.Lookup(id).(*cbbridge.Callback)
	if cb == nil {
		logUnknown(function, id)
	}
	return cb
}

func logUnknown(function string, id uintptr) {
	logrus.WithFields(logrus.Fields{
		"function": function,
		"id":       id,
	}).Warn("Unknown callback id")
}

// borrowString views caller memory as a string for the length of one call.
// The bytes go straight back out to native code, so nothing is copied.
func borrowString(p *byte, n uintptr) string {
	if p == nil || n == 0 {
		return ""
	}
	return unsafe.String(p, n)
}
