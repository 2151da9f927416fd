// Package logs builds the command line tool logger.
package logs

import (
	"fmt"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Level is shared by all handlers created by New.
var Level = new(slog.LevelVar)

// SetLevel sets logging level by name: "debug", "info", "warn" or "error".
func SetLevel(name string) error {
	if e := Level.UnmarshalText([]byte(name)); e != nil {
		return fmt.Errorf("log level: %w", e)
	}
	return nil
}

// New creates a logger writing text records to terminal and, if file is not nil, JSON records to file.
func New(terminal, file io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level}
	handlers := []slog.Handler{slog.NewTextHandler(terminal, opts)}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, opts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// Discard returns a logger that writes nothing.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
