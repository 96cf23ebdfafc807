package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wl0182/Restaurant-Ordering-System/pkg/logger"
)

// LoggingRoundTripper propagates the request id to the backend and logs every
// outgoing call. Headers are never logged so bearer tokens stay out of the logs.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	target := fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())

	slog.InfoContext(ctx, "outgoing request", "request", target)

	start := time.Now()

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		slog.WarnContext(ctx, "request failed", "request", target, "error", err)
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", target,
		"status", resp.StatusCode,
		"latency", time.Since(start).String(),
	)

	return resp, nil
}
