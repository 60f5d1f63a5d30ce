package logs

import (
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose turns verbose logging on or off.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Verbose reports whether verbose logging is enabled.
func Verbose() bool {
	return verbose.Load()
}

// LogV prints a formatted log message only when verbose logging is enabled.
func LogV(format string, args ...interface{}) {
	if verbose.Load() {
		log.Printf(format, args...)
	}
}
