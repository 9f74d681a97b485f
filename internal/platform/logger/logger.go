package logger

import (
	"log/slog"
	"os"
)

// New returns a structured JSON logger writing to stdout, tagged with the
// service name so both services can be told apart in shared log streams.
func New(service string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler).With("service", service)
}
