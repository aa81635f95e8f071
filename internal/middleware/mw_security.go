package middleware

import (
	"net/http"
)

const (
	xContentTypeOptions = "X-Content-Type-Options"
	cacheControl        = "Cache-Control"
	referrerPolicy      = "Referrer-Policy"
)

// Security adds essential security headers.
//
// NOTE: Headers like "Strict-Transport-Security" are better managed by a reverse proxy.
// Frame protection is only needed on the provider redirect and is set by its handler.
func (m Middleware) Security(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Browsers should not try to guess the Content-Type if it is not provided.
		w.Header().Set(xContentTypeOptions, "nosniff")

		// Prevent caching of sensitive data.
		// Authorization codes travel in the query string and must not end up in a shared cache.
		w.Header().Set(cacheControl, "no-store, max-age=0")

		// Codes and flow parameters must not leak to the next page through the Referer header.
		w.Header().Set(referrerPolicy, "no-referrer")

		// Call the next handler
		next.ServeHTTP(w, r)
	})
}
