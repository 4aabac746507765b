package testhelpers

import (
	"io"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.New(logSink, slog.LevelDebug)
}
