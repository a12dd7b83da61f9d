package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/platform/logging"
)

// sessionPathPrefix is the URL prefix of every session-scoped endpoint.
const sessionPathPrefix = "/api/v1/sessions/"

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID, correlation ID and,
// for session-scoped paths, the session ID. The child is stored via
// logging.WithLogger for downstream use. Completion is logged with the
// matched route pattern, status code, response size and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if id := sessionIDFromPath(r.URL.Path); id != "" {
				attrs = append(attrs, slog.String("session_id", id))
			}
			child := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			done := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(r); route != "" {
				done = append(done, slog.String("route", route))
			}
			child.InfoContext(ctx, "request completed", done...)
		})
	}
}

// sessionIDFromPath returns the session ID segment of a session-scoped path,
// or "" for any other path.
func sessionIDFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, sessionPathPrefix)
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}
