//go:build !ios && !android && (amd64 || arm64)

package cbbridge

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Environment variables read by ConfigFromEnv.
const (
	// EnvLibraryPath lists directories searched first by OpenLibrary,
	// separated like PATH.
	EnvLibraryPath = "CBBRIDGE_LIBRARY_PATH"

	// EnvLogLevel is a logrus level name ("debug", "warning", ...).
	EnvLogLevel = "CBBRIDGE_LOG_LEVEL"
)

// Config holds the bridge settings that are not per-callback.
type Config struct {
	// LibraryPath is searched before the system loader paths.
	LibraryPath []string

	// LogLevel is applied to the bridge logger by Configure.
	LogLevel logrus.Level
}

var (
	configMu sync.RWMutex
	config   = DefaultConfig()
)

// DefaultConfig returns the configuration used when Configure was never called.
func DefaultConfig() Config {
	return Config{
		LogLevel: logrus.InfoLevel,
	}
}

// ConfigFromEnv builds a Config from EnvLibraryPath and EnvLogLevel.
// Unset variables keep their DefaultConfig values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv(EnvLibraryPath); p != "" {
		cfg.LibraryPath = filepath.SplitList(p)
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("cbbridge: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Configure installs cfg and sets the log level of the bridge logger.
func Configure(cfg Config) {
	configMu.Lock()
	config = cfg
	configMu.Unlock()

	Logger().SetLevel(cfg.LogLevel)
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	cfg := config
	cfg.LibraryPath = append([]string(nil), config.LibraryPath...)
	return cfg
}
