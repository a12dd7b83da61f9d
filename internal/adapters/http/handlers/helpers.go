package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/skysearch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// sessionID extracts the session ID path parameter. Unknown IDs are
// reported by the service as domain.ErrNotFound.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// parseCategory extracts and validates the passenger category path parameter.
func parseCategory(r *http.Request) (passenger.Category, error) {
	cat := passenger.Category(strings.ToLower(chi.URLParam(r, "category")))
	if !cat.IsValid() {
		return "", domain.NewFieldError("category", "must be one of adults, children, infants")
	}
	return cat, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewFieldError("body", "invalid JSON"))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
