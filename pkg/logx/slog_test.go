package logx_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"scoreboard/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal(slog.LevelDebug, logx.ParseLevel("debug"))
	rq.Equal(slog.LevelWarn, logx.ParseLevel(" WARN "))
	rq.Equal(slog.LevelError, logx.ParseLevel("error"))
	rq.Equal(slog.LevelInfo, logx.ParseLevel(""))
	rq.Equal(slog.LevelInfo, logx.ParseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.NewLogger(&buf, slog.LevelWarn)
	rq.False(logger.Enabled(context.Background(), slog.LevelInfo))
	rq.True(logger.Enabled(context.Background(), slog.LevelWarn))

	logger.Warn("save failed", slog.String(logx.FieldTeam, "alpha"), logx.Error(errors.New("boom")))

	rq.Contains(buf.String(), "save failed")
	rq.Contains(buf.String(), "alpha")
	rq.Contains(buf.String(), "boom")
}
