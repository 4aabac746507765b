package errors_test

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := errors.New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	// Annotated errors don't match sentinels with the same message.
	require.NotErrorIs(t, err, errors.NewSentinel("test error"))

	// Ensure log values are coming through.
	group := err.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.NotEqual(t, -1, sourceIdx)
	source := group[sourceIdx]
	require.Contains(t, source.Value.String(), "annotatederror_test.go")
}

func TestWrap(t *testing.T) {
	sentinel := errors.NewSentinel("no such path")

	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errors.Wrap(nil, "move"))
	})

	t.Run("keeps sentinel and collects attributes", func(t *testing.T) {
		inner := errors.Wrap(sentinel, "move", slog.String("room", "Biblioteca"))
		outer := errors.Wrap(inner, "explore", slog.String("case_id", "abc"))

		require.ErrorIs(t, outer, sentinel)
		require.Equal(t, "explore: move: no such path", outer.Error())

		var annotated errors.AnnotatedError
		require.True(t, errors.As(outer, &annotated))
		group := annotated.LogValue().Group()
		require.Contains(t, group, slog.String("room", "Biblioteca"))
		require.Contains(t, group, slog.String("case_id", "abc"))
	})

	t.Run("source points to the caller", func(t *testing.T) {
		var annotated errors.AnnotatedError
		require.True(t, errors.As(errors.Wrap(sentinel, "here"), &annotated))
		group := annotated.LogValue().Group()
		sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
			return attr.Key == "source"
		})
		require.NotEqual(t, -1, sourceIdx)
		require.Contains(t, group[sourceIdx].Value.String(), "annotatederror_test.go")
	})
}

func TestSlogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	plain := errors.NewSentinel("plain failure")
	logger.Error("plain", errors.SlogError(plain))
	require.Contains(t, buf.String(), `error="plain failure"`)

	buf.Reset()
	annotated := errors.Wrap(plain, "annotated", slog.Int("buckets", 0))
	logger.Error("annotated", errors.SlogError(annotated))
	require.Contains(t, buf.String(), "error.annotation.buckets=0")
	require.Contains(t, buf.String(), `error.error="annotated: plain failure"`)
}
