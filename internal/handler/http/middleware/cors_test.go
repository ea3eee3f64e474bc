package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowlist(t *testing.T) {
	l := NewOriginAllowlist([]string{"https://News.Example.com/", " ", "http://localhost:3000"})

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://news.example.com", true},
		{"HTTPS://NEWS.EXAMPLE.COM/", true},
		{"http://localhost:3000", true},
		{"http://localhost:3001", false},
		{"https://evil.example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, l.IsAllowed(tt.origin))
		})
	}

	assert.True(t, NewOriginAllowlist([]string{"*"}).IsAllowed("https://anything.test"))
}

func TestCORS(t *testing.T) {
	cfg := DefaultCORSConfig([]string{"https://news.example.com"})
	reached := false
	h := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusCreated)
	}))

	tests := []struct {
		name        string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantAllowed bool
		wantReached bool
	}{
		{"same origin", http.MethodGet, "", false, http.StatusCreated, false, true},
		{"allowed actual request", http.MethodGet, "https://news.example.com", false, http.StatusCreated, true, true},
		{"allowed preflight", http.MethodOptions, "https://news.example.com", true, http.StatusNoContent, true, false},
		{"disallowed origin", http.MethodGet, "https://evil.example.com", false, http.StatusCreated, false, true},
		{"disallowed preflight falls through", http.MethodOptions, "https://evil.example.com", true, http.StatusCreated, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(tt.method, "/news/add-news", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReached, reached)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
			if tt.preflight && tt.wantAllowed {
				assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
