// Package log configures the default structured logger
package log

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init points the default slog logger at a size-rotated log file. The
// CLI's stdout stays reserved for user-facing output.
func Init(path string) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
