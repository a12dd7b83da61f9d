// Package acl implements the Anti-Corruption Layer between the Sky-Scrapper
// flights API (reached through RapidAPI) and the domain. Response shapes and
// their translators live in the sky subpackage; the HTTP request lifecycle
// and downstream error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/skysearch/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers both error shapes seen downstream: RFC 7807 problem
// details, and the {"message": "..."} body the RapidAPI gateway sends for
// quota and key failures.
type errorBody struct {
	Detail  string          `json:"detail"`
	Message json.RawMessage `json:"message"`
	Errors  []errorDetail   `json:"errors"`
}

// errorDetail represents a single field-level error within an RFC 7807 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a downstream error response to a domain error.
//
//   - 404 → domain.ErrNotFound
//   - 400, 422 → *domain.ValidationError when field errors are present,
//     domain.ErrValidation otherwise
//   - 401, 403 → domain.ErrForbidden (bad or missing RapidAPI key)
//   - 429, 5xx → domain.ErrUnavailable (quota exhausted or upstream down)
//
// Any other status yields an error that matches no sentinel.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.text()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case code == http.StatusTooManyRequests:
		return fmt.Errorf("rate limited: %s: %w", detail, domain.ErrUnavailable)

	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// text returns the most specific human-readable message in the body.
func (b errorBody) text() string {
	if b.Detail != "" {
		return b.Detail
	}
	var s string
	if err := json.Unmarshal(b.Message, &s); err == nil {
		return s
	}
	return ""
}

// parseErrorBody reads a JSON error body from the response. Non-JSON or
// unreadable bodies yield an empty errorBody.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var b errorBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return errorBody{}
	}
	return b
}

// toValidationError converts RFC 7807 error details to a domain ValidationError.
// It strips the "query." prefix from locations to produce clean parameter names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "query.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
