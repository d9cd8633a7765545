package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger writing to w at the given level. When
// human is set, events are rendered by zerolog's console writer instead
// of as JSON lines.
func NewLogger(w io.Writer, level zerolog.Level, human bool) zerolog.Logger {
	if human {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
