package kbquery

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

const (
	LevelDebug = slog.Level(-4)
	LevelInfo  = slog.Level(0)
	LevelWarn  = slog.Level(4)
	LevelError = slog.Level(8)
)

var level = new(slog.LevelVar)

func init() {
	handler := slog.NewTextHandler(os.Stdout,
		&slog.HandlerOptions{Level: level})
	Logger = slog.New(handler)
}

// SetLogLevel accepts debug, info, warn or error. Anything else means info.
func SetLogLevel(name string) {
	switch strings.ToLower(name) {
	case "debug":
		level.Set(LevelDebug)
	case "warn", "warning":
		level.Set(LevelWarn)
	case "error":
		level.Set(LevelError)
	default:
		level.Set(LevelInfo)
	}
}
