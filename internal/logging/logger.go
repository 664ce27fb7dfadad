// Package logging holds the process-wide zerolog logger.  It discards
// everything until a command installs a logger with SetGlobalLogger.
package logging

import (
	"github.com/rs/zerolog"
)

// Logger is the process-wide logger.  Replace it with SetGlobalLogger.
var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces the logger used by the package level functions,
// and by zerolog.Ctx for contexts without a logger.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// Debug starts a debug level event on Logger.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info level event on Logger.
func Info() *zerolog.Event { return Logger.Info() }

// Error starts an error level event on Logger.
func Error() *zerolog.Event { return Logger.Error() }
