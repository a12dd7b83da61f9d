package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// statusError is the error of an attempt that got a retryable status.
// RetryAfter carries the server's Retry-After hint, zero when absent.
type statusError struct {
	Code       int
	Service    string
	RetryAfter time.Duration
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Code, e.Service)
}

// doWithRetry sends req until it gets a non-retryable answer or runs out of
// attempts. Between attempts it waits for the server's Retry-After when
// RapidAPI sends one, and otherwise backs off exponentially with jitter.
//
// Bodies are replayed through req.GetBody. A request whose body cannot be
// rewound is sent once. The result is written to resp rather than returned
// to avoid false positives from the bodyclose linter; the caller closes the
// response body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		attempts = 1
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, lastErr); err != nil {
				return err
			}
			if err := rewindBody(req); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = &statusError{
			Code:       r.StatusCode,
			Service:    c.serviceName,
			RetryAfter: parseRetryAfter(r.Header.Get("Retry-After"), time.Now()),
		}

		// The last response keeps its body so the caller can translate it.
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}

		drainResponseBody(r)
	}

	return lastErr
}

// rewindBody replaces a consumed request body with a fresh copy.
func rewindBody(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// drainResponseBody reads and discards the response body to enable HTTP
// connection reuse before a retry attempt.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the retry at WARN level and waits for the retry delay or
// context cancellation.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := c.retryDelay(attempt, lastErr)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryDelay prefers the server's Retry-After hint, capped at the configured
// max interval, over computed backoff.
func (c *Client) retryDelay(attempt int, lastErr error) time.Duration {
	var se *statusError
	if errors.As(lastErr, &se) && se.RetryAfter > 0 {
		return min(se.RetryAfter, c.retryCfg.maxInterval)
	}
	return backoff(attempt, c.retryCfg)
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter only

	return time.Duration(max(delay, 0))
}

// parseRetryAfter reads a Retry-After header given either as delay seconds
// or as an HTTP date. Missing, malformed, and past values yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadline expiry end the request; anything else, network
// errors included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a response status is worth another
// attempt: 429 quota throttling and server errors other than 501.
func isRetryableStatus(code int) bool {
	switch {
	case code == http.StatusTooManyRequests:
		return true
	case code == http.StatusNotImplemented:
		return false
	default:
		return code >= http.StatusInternalServerError
	}
}
