package middleware

import (
	"net/http"
	"strings"

	"news-portal/pkg/security/csp"
)

// SecurityHeaders sets the CSP from policy plus the usual hardening
// headers for a JSON API. A nil policy uses csp.API.
func SecurityHeaders(policy *csp.Policy) func(http.Handler) http.Handler {
	return SecurityHeadersByPath(policy, nil)
}

// SecurityHeadersByPath is SecurityHeaders with per-prefix policies. The
// longest prefix in byPrefix that matches the request path wins; other
// paths get policy.
func SecurityHeadersByPath(policy *csp.Policy, byPrefix map[string]*csp.Policy) func(http.Handler) http.Handler {
	if policy == nil {
		policy = csp.API()
	}
	type header struct{ name, value string }
	def := header{policy.HeaderName(), policy.Build()}
	prefixed := make(map[string]header, len(byPrefix))
	for prefix, p := range byPrefix {
		prefixed[prefix] = header{p.HeaderName(), p.Build()}
	}

	pick := func(path string) header {
		best, bestLen := def, -1
		for prefix, h := range prefixed {
			if strings.HasPrefix(path, prefix) && len(prefix) > bestLen {
				best, bestLen = h, len(prefix)
			}
		}
		return best
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if cspHeader := pick(r.URL.Path); cspHeader.value != "" {
				h.Set(cspHeader.name, cspHeader.value)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")
			next.ServeHTTP(w, r)
		})
	}
}
