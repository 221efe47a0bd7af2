// Package observability wires logging and metrics for the service.
package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide slog logger. Production environments
// get JSON output; anything else gets human-readable text.
func NewLogger(environment string) *slog.Logger {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

// NoOpLogger discards everything. Used in tests.
var NoOpLogger = slog.New(slog.DiscardHandler)
