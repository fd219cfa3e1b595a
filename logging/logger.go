// Package logging builds the structured loggers shared by the commands.
package logging

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON slog.Logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Level maps the -debug flag to a level, with base used otherwise.
func Level(debug bool, base slog.Level) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return base
}
