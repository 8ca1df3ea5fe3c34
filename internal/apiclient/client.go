// Package apiclient is the typed client for the ethics backend: application
// CRUD, answer saves, search and user lookup, with bounded retry on
// transient failure and backend error codes mapped to readable messages.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"ethics-workflow/internal/common/config"
	commonerrors "ethics-workflow/internal/common/errors"
	"ethics-workflow/internal/common/logger"
	"ethics-workflow/internal/common/metrics"
)

// Client talks to the ethics backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
	maxRetries int
	tracer     trace.Tracer
}

func New(cfg config.APIConfig, log logger.Logger) *Client {
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = 3
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
		log:        log,
		maxRetries: retries,
		tracer:     otel.Tracer("ethics-workflow/apiclient"),
	}
}

// errorBody is the shape of a 400 response body: the server names the
// failure with an error code from a fixed dictionary.
type errorBody struct {
	ErrorCode string `json:"errorCode"`
}

// do runs one request with bounded retry. Connection failures and 5xx
// responses retry with backoff; everything else fails on first sight.
// A 2xx body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	ctx, span := c.tracer.Start(ctx, operation,
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		))
	defer span.End()

	start := time.Now()
	err := c.doWithRetry(ctx, method, path, body, out)
	metrics.APIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		code := "unknown"
		if engineErr, ok := err.(*commonerrors.EngineError); ok {
			code = string(engineErr.Code)
		}
		metrics.APIRequestFailures.WithLabelValues(operation, code).Inc()
		c.log.WithError(err).Error("backend request failed", map[string]interface{}{
			"operation": operation,
			"method":    method,
			"path":      path,
		})
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, body, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * 500 * time.Millisecond
			c.log.Warn("retrying backend request", map[string]interface{}{
				"path":    path,
				"attempt": attempt,
				"backoff": backoff.String(),
			})
			select {
			case <-ctx.Done():
				return commonerrors.NewBackendUnavailableError(ctx.Err())
			case <-time.After(backoff):
			}
		}

		err := c.doOnce(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		lastErr = err

		engineErr, ok := err.(*commonerrors.EngineError)
		if !ok || !engineErr.Retryable {
			return err
		}
	}
	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return commonerrors.NewBackendUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverCode := ""
		if resp.StatusCode == http.StatusBadRequest {
			var eb errorBody
			if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
				serverCode = eb.ErrorCode
			}
		}
		return commonerrors.NewRequestFailedError(resp.StatusCode, serverCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, operation, path string, out interface{}) error {
	return c.do(ctx, operation, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, operation, path string, body, out interface{}) error {
	return c.do(ctx, operation, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, operation, path string, body, out interface{}) error {
	return c.do(ctx, operation, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, operation, path string, body, out interface{}) error {
	return c.do(ctx, operation, http.MethodPatch, path, body, out)
}

func queryEscape(v string) string { return url.QueryEscape(v) }
