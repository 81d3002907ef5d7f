package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global structured logger for the CLI.
var Logger *slog.Logger

func init() {
	// Default to a simple text handler on stderr so document output and
	// diagnostics never share a stream.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Setup configures the logger based on verbosity and output preferences.
func Setup(verbose bool, w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if w == nil {
		w = os.Stderr
	}

	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}
