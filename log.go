//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMu sync.RWMutex
	logger   = logrus.StandardLogger()
)

// SetLogger replaces the logger used by the bridge. Passing nil restores
// logrus.StandardLogger().
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Logger returns the logger used by the bridge.
func Logger() *logrus.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func logWith(function string) *logrus.Entry {
	return Logger().WithFields(logrus.Fields{
		"function": function,
	})
}

// logDebugContext keeps the invocation path allocation free when debug
// logging is off.
func logDebugContext(function string, ctx uintptr, msg string) {
	l := Logger()
	if !l.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	l.WithFields(logrus.Fields{
		"function": function,
		"context":  ctx,
	}).Debug(msg)
}
