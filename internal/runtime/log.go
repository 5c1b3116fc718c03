package runtime

import (
	"log/slog"
	"os"
)

// NewLogger builds the tool's structured logger. Diagnostics go to stderr as
// JSON so stdout stays parseable command output.
func NewLogger(tool string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(h).With("tool", tool)
}
