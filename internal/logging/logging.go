// Package logging configures the store's structured logger. Log output
// goes to a rotated file, never to the terminal, which belongs to the
// interactive UI.
package logging

import (
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the global logger exactly once and returns it.
func Init(component, filePath string) *slog.Logger {
	once.Do(func() {
		rot := &lumberjack.Logger{
			Filename:   filepath.Clean(filePath),
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}

		h := slog.NewJSONHandler(rot, &slog.HandlerOptions{Level: slog.LevelInfo})
		base = slog.New(h).With("component", component)
	})
	return base
}

// Base returns the global logger, initializing a default one if needed.
func Base() *slog.Logger {
	if base == nil {
		return Init("store", "logs/store.log")
	}
	return base
}

// New returns a child logger scoped to component. It reuses the global
// handler and writer.
func New(component string) *slog.Logger {
	return Base().With("component", component)
}
