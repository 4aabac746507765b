package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug).With("source", "Investigation")

	ctx := logging.WithAttrs(context.Background(), slog.String("case_id", "abc"))
	ctx = logging.WithAttrs(ctx, slog.String("room", "Hall de entrada"))
	logger.InfoContext(ctx, "entered room")

	out := buf.String()
	require.Contains(t, out, "source=Investigation")
	require.Contains(t, out, "case_id=abc")
	require.Contains(t, out, `room="Hall de entrada"`)
}

func TestWithAttrsDoesNotLeakBetweenSiblings(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)

	parent := logging.WithAttrs(context.Background(), slog.String("case_id", "abc"))
	left := logging.WithAttrs(parent, slog.String("branch", "left"))
	_ = logging.WithAttrs(parent, slog.String("branch", "right"))

	logger.InfoContext(left, "moved")
	require.Contains(t, buf.String(), "branch=left")
	require.NotContains(t, buf.String(), "branch=right")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr error
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: " warn ", want: slog.LevelWarn},
		{level: "warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "loud", want: slog.LevelInfo, wantErr: logging.ErrUnknownLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.level)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}
