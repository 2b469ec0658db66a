package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sandgrav/catalog-api/internal/constants"
)

// requestIDKey is the context key under which the request ID is stored.
type requestIDKey struct{}

// RequestID assigns a correlation identifier to every request. An incoming
// X-Request-ID header is honored so identifiers survive proxies; otherwise a
// fresh UUID is generated. The identifier is echoed on the response and made
// available to downstream middleware through the request context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			w.Header().Set(constants.HeaderRequestID, requestID)
			ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the correlation identifier assigned to the request,
// or an empty string when the middleware did not run.
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}
