// Package logging configures the process-wide zerolog logger. bitpet is
// quiet by default; --verbose turns on debug-level command tracing.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initialises the global logger writing to out.
func Setup(out io.Writer, verbose bool) {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
