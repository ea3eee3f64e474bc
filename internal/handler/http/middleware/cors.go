// Package middleware holds optional cross-cutting HTTP middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig is the cross-origin policy.
type CORSConfig struct {
	// AllowedOrigins are compared case-insensitively without trailing
	// slashes. "*" allows any origin.
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds a preflight may be cached
	Logger           *slog.Logger
}

// DefaultCORSConfig allows the news methods and the headers clients send.
func DefaultCORSConfig(origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         86400,
	}
}

// OriginAllowlist matches origins against a fixed list.
type OriginAllowlist struct {
	any     bool
	origins map[string]struct{}
}

// NewOriginAllowlist normalizes origins and drops empty entries.
func NewOriginAllowlist(origins []string) *OriginAllowlist {
	l := &OriginAllowlist{origins: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		o = normalizeOrigin(o)
		switch o {
		case "":
		case "*":
			l.any = true
		default:
			l.origins[o] = struct{}{}
		}
	}
	return l
}

// IsAllowed reports whether origin may read responses.
func (l *OriginAllowlist) IsAllowed(origin string) bool {
	if l.any {
		return true
	}
	_, ok := l.origins[normalizeOrigin(origin)]
	return ok
}

func normalizeOrigin(o string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(o)), "/")
}

// CORS answers preflight requests from allowed origins with 204 and adds
// the allow headers to their actual requests. Requests from other origins
// pass through without CORS headers, so browsers block the response.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allow := NewOriginAllowlist(cfg.AllowedOrigins)
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !allow.IsAllowed(origin) {
				if cfg.Logger != nil {
					cfg.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
