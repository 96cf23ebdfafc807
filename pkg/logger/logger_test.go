package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wl0182/Restaurant-Ordering-System/pkg/logger"
)

//nolint:paralleltest
func TestHandler_Handle(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithBrowserID(ctx, "browser-1")
	ctx = logger.WithRole(ctx, "ADMIN")

	l.With("component", "test").DebugContext(ctx, "hello")

	var rec map[string]any

	err = json.Unmarshal(buf.Bytes(), &rec)
	require.NoError(t, err)
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "browser-1", rec["browser_id"])
	require.Equal(t, "ADMIN", rec["role"])
	require.Equal(t, "test", rec["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud")
	require.Error(t, err)
}
