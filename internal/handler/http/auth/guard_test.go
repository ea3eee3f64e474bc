package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-with-enough-length")

func mustToken(t *testing.T, secret []byte, sub, role string, ttl time.Duration) string {
	t.Helper()
	tok, err := IssueToken(secret, sub, role, ttl)
	require.NoError(t, err)
	return tok
}

func TestAuthenticate(t *testing.T) {
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role:             RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "x", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "x"},
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
		want    User
	}{
		{"admin", "Bearer " + mustToken(t, testSecret, "alice", RoleAdmin, time.Hour), nil, User{"alice", RoleAdmin}},
		{"editor lowercase scheme", "bearer " + mustToken(t, testSecret, "bob", RoleEditor, time.Hour), nil, User{"bob", RoleEditor}},
		{"missing header", "", ErrMissingToken, User{}},
		{"basic auth", "Basic dXNlcjpwYXNz", ErrMissingToken, User{}},
		{"wrong secret", "Bearer " + mustToken(t, []byte("other-secret"), "alice", RoleAdmin, time.Hour), ErrInvalidToken, User{}},
		{"expired", "Bearer " + mustToken(t, testSecret, "alice", RoleAdmin, -time.Minute), ErrInvalidToken, User{}},
		{"alg none", "Bearer " + none, ErrInvalidToken, User{}},
		{"no exp", "Bearer " + noExp, ErrInvalidToken, User{}},
		{"no subject", "Bearer " + mustToken(t, testSecret, "", RoleAdmin, time.Hour), ErrInvalidToken, User{}},
		{"reader role", "Bearer " + mustToken(t, testSecret, "carol", "reader", time.Hour), ErrForbidden, User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Authenticate(tt.header, testSecret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuard(t *testing.T) {
	var seen User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	})
	h := Guard(testSecret, nil)(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + mustToken(t, testSecret, "alice", RoleAdmin, time.Hour), http.StatusCreated},
		{"missing", "", http.StatusUnauthorized},
		{"forbidden role", "Bearer " + mustToken(t, testSecret, "carol", "reader", time.Hour), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = User{}
			req := httptest.NewRequest(http.MethodDelete, "/news/delete-news?id=1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusCreated {
				assert.Equal(t, "alice", seen.Subject)
			} else {
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}

func TestGuard_DisabledWithoutSecret(t *testing.T) {
	h := Guard(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/news/add-news", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGuard_RecordsDecisions(t *testing.T) {
	missing := guardDecisions.WithLabelValues(resultMissing)
	before := testutil.ToFloat64(missing)

	h := Guard(testSecret, nil)(http.NotFoundHandler())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/news/update-news", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(missing))
}
