// Package logger builds the process logger. Diagnostics go to stderr so
// stdout stays reserved for the result envelope.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates a logger writing to w. Verbose enables per-request debug
// lines; otherwise only warnings and errors come through.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
