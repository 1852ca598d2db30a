package core

import (
	"context"
	"log/slog"
)

const (
	// LevelTrace sits below debug and carries one record per instruction.
	LevelTrace slog.Level = slog.LevelDebug - 4
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
