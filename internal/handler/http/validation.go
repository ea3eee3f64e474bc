package http

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
)

const (
	maxAuthHeaderBytes = 8 << 10
	maxPathBytes       = 2 << 10
)

// InputValidation rejects requests with an oversized Authorization header
// or path before any handler runs.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				respond.Fail(w, http.StatusRequestHeaderFieldsTooLarge,
					"Request Rejected", "authorization header too large")
				return
			}
			if len(r.URL.Path) > maxPathBytes {
				respond.Fail(w, http.StatusRequestURITooLong,
					"Request Rejected", "URI too long")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
