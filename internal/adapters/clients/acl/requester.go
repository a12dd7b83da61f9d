package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for ACL clients:
// request creation, execution via httpclient.Client, response body cleanup,
// status code validation, error translation, and JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Get sends GET {baseURL}{path}?{query} and decodes a 200 response body into
// respBody. Any other status is passed to TranslateHTTPError.
func (r *Requester) Get(ctx context.Context, path string, query url.Values, respBody any) error {
	target := r.client.BaseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	return r.execute(req, http.StatusOK, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Name returns the downstream service name of the underlying HTTP client.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the underlying HTTP client's circuit breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed. The logged URL
// carries only the path: query strings hold user search input.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status. Translate the response instead of surfacing
		// the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
