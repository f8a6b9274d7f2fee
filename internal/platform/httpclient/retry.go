package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// jitterFraction randomizes each backoff delay by ±25%.
const jitterFraction = 0.25

// StatusError is returned when a receiver kept answering with a retryable
// status (429 or 5xx) until the attempt budget ran out.
type StatusError struct {
	Code int
	Peer string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Code, e.Peer)
}

// doWithRetry sends req up to maxAttempts times with exponential backoff.
// The body is buffered once and replayed on every attempt. A returned
// response has an open body the caller must close.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retryCfg.maxAttempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return nil, err
	}

	attempt := 0
	send := func() (*http.Response, error) {
		attempt++
		resetRequestBody(req, body)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if isRetryableStatus(resp.StatusCode) {
			drainResponseBody(resp)
			return nil, &StatusError{Code: resp.StatusCode, Peer: c.serviceName}
		}
		return resp, nil
	}

	notify := func(err error, delay time.Duration) {
		c.logger.WarnContext(ctx, "retrying webhook delivery",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retryCfg.maxAttempts),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)
	}

	return backoff.Retry(ctx, send,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retryCfg.maxAttempts)),
		backoff.WithNotify(notify),
	)
}

func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryCfg.initialInterval
	b.MaxInterval = c.retryCfg.maxInterval
	b.Multiplier = c.retryCfg.multiplier
	b.RandomizationFactor = jitterFraction
	b.Reset()
	return b
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return body, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody lets the transport reuse the connection.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
