package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/skysearch/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "400 maps to ErrValidation", statusCode: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{name: "422 maps to ErrValidation", statusCode: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{name: "401 maps to ErrForbidden", statusCode: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{name: "403 maps to ErrForbidden", statusCode: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "429 maps to ErrUnavailable", statusCode: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{},
				Body:       http.NoBody,
			}

			got := TranslateHTTPError(resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		contentType string
		body        string
		wantSubstr  string
	}{
		{
			name:        "RFC 7807 detail",
			statusCode:  http.StatusNotFound,
			contentType: "application/problem+json",
			body:        `{"type":"about:blank","title":"Not Found","status":404,"detail":"airport LOND not found"}`,
			wantSubstr:  "airport LOND not found",
		},
		{
			name:        "gateway message",
			statusCode:  http.StatusForbidden,
			contentType: "application/json",
			body:        `{"message":"You are not subscribed to this API."}`,
			wantSubstr:  "You are not subscribed to this API.",
		},
		{
			name:        "quota message",
			statusCode:  http.StatusTooManyRequests,
			contentType: "application/json; charset=utf-8",
			body:        `{"message":"You have exceeded the rate limit per second for your plan"}`,
			wantSubstr:  "rate limit per second",
		},
		{
			name:        "non-JSON body falls back to status text",
			statusCode:  http.StatusBadGateway,
			contentType: "text/html",
			body:        "<html>bad gateway</html>",
			wantSubstr:  "Bad Gateway",
		},
		{
			name:        "structured message falls back to status text",
			statusCode:  http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"message":[{"date":"required"}]}`,
			wantSubstr:  "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{"Content-Type": []string{tt.contentType}},
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			got := TranslateHTTPError(resp)

			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationErrorWithDetails(t *testing.T) {
	t.Parallel()

	body := `{
		"detail": "validation failed",
		"errors": [
			{"location": "query.date", "message": "must be in the future"},
			{"location": "originSkyId", "message": "is required"}
		]
	}`

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}

	got := TranslateHTTPError(resp)

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error is not *ValidationError: %v", got)
	}
	if !errors.Is(got, domain.ErrValidation) {
		t.Errorf("error is not ErrValidation: %v", got)
	}
	if verr.Fields["date"] != "must be in the future" {
		t.Errorf("Fields[date] = %q, want %q", verr.Fields["date"], "must be in the future")
	}
	if verr.Fields["originSkyId"] != "is required" {
		t.Errorf("Fields[originSkyId] = %q, want %q", verr.Fields["originSkyId"], "is required")
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTeapot,
		Header:     http.Header{},
		Body:       http.NoBody,
	}

	got := TranslateHTTPError(resp)

	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrForbidden, domain.ErrUnavailable} {
		if errors.Is(got, sentinel) {
			t.Errorf("TranslateHTTPError() = %v, want no match for %v", got, sentinel)
		}
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want status code 418 in message", got.Error())
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       nil,
	}

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("error is not ErrNotFound: %v", got)
	}
}
