// Package middleware provides the inbound pipeline of the flight search API.
//
// Requests pass through, in order:
//
//	Recovery → CORS → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// CORS sits ahead of ID assignment so preflights from the browser client are
// answered without logging or tracing. Logging and tracing key their records
// by the chi route pattern and the session ID in the path. Each middleware is
// a func(http.Handler) http.Handler composed with Chain.
package middleware

import "net/http"

// responseWriter records the status and response size for recovery, span
// status and the completion log line.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader captures the status code and delegates to the underlying writer.
// Only the first call takes effect; subsequent calls are ignored.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write delegates to the underlying writer, triggering an implicit 200 OK if
// WriteHeader has not been called.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.headerWritten = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap returns the underlying http.ResponseWriter so that
// http.ResponseController and type assertions (http.Flusher, http.Hijacker)
// work through the wrapper.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
