package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/jsamuelsen11/skysearch/internal/platform/config"
)

// CORS returns middleware that answers preflight requests and sets
// cross-origin headers for browser clients. Preflights are answered without
// reaching the router. With no allowed origins the middleware is a no-op.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders:   []string{"Location", headerRequestID, headerCorrelationID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           int(cfg.MaxAge.Seconds()),
	})
	return c.Handler
}
