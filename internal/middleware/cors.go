package middleware

import (
	"net/http"

	"github.com/sandgrav/catalog-api/internal/constants"
)

// CORS applies the cross-origin headers for requests from an allowed origin
// and answers OPTIONS preflight requests directly.
func CORS(allowedOrigins []string, allowCredentials bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get(constants.HeaderOrigin)

			// Check if the request's origin is in our allowed list
			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					if allowCredentials {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}

					// For non-OPTIONS requests, just set these headers and continue
					if r.Method != http.MethodOptions {
						next.ServeHTTP(w, r)
						return
					}

					// Handle OPTIONS preflight requests
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "300")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			// If origin is not allowed, continue without setting CORS headers
			next.ServeHTTP(w, r)
		})
	}
}
