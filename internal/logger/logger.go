package logger

import (
	"log/slog"
	"os"
)

type Logger struct {
	*slog.Logger
}

// New returns a text logger on stdout. debug widens the level so
// per-move logging shows up.
func New(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{Logger: log}
}

// Discard returns a logger that drops everything. Tests use it to
// keep match output quiet.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}
