// Package logger configures the zerolog logger used by the command.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level maps a level name to a zerolog level. Unknown names are info.
func Level(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	}

	return zerolog.InfoLevel
}

// Setup returns a logger writing to w at the given level. Format json writes
// one JSON object per event, anything else writes console output.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).
		Level(Level(level)).
		With().
		Timestamp().
		Logger()
}
