package settings

import (
	"io"
	"log/slog"
)

// NewLogger creates the text logger used by both commands. Debug enables
// per-request records.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
