package restaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/config"
	"github.com/wl0182/Restaurant-Ordering-System/pkg/transport"
)

const (
	defaultRetryWaitMin = 100 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxErrorBodyLen     = 512
)

type ctxKey int8

const ctxKeyIdempotent ctxKey = iota

// Client talks to the restaurant backend. Every method returns either the decoded
// payload or an *entity.APIError naming the failed operation.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient retries only transport failures of GET requests, and only when
// cfg.RetryAttempts is positive. HTTP statuses are never retried.
func NewClient(cfg config.RestaurantAPI) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil && ctx.Value(ctxKeyIdempotent) != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		http:    retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

type errorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	var r io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &entity.APIError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}

		r = bytes.NewReader(b)
	}

	if method == http.MethodGet {
		ctx = context.WithValue(ctx, ctxKeyIdempotent, true)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return &entity.APIError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &entity.APIError{Op: op, Err: fmt.Errorf("send request: %w", err)}
	}

	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &entity.APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &entity.APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(b),
			Err:        entity.StatusError(resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(b, out)
	if err != nil {
		return &entity.APIError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

// errorMessage extracts the human readable reason from a backend error body.
func errorMessage(body []byte) string {
	var e errorResponse

	err := json.Unmarshal(body, &e)
	if err == nil {
		switch {
		case e.Message != "":
			return e.Message
		case e.Error != "":
			return e.Error
		}
	}

	msg := strings.TrimSpace(string(body))
	if strings.HasPrefix(msg, "<") || strings.HasPrefix(msg, "{") {
		return ""
	}

	if len(msg) > maxErrorBodyLen {
		msg = msg[:maxErrorBodyLen]
	}

	return msg
}
