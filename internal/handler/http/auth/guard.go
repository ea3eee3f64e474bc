// Package auth implements the optional bearer-token guard on the mutating
// news routes. Tokens are HS256 JWTs carrying sub, role and exp claims.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"news-portal/internal/handler/http/requestid"
	"news-portal/internal/handler/http/respond"
)

type ctxKey string

const ctxUser ctxKey = "user"

// Roles allowed through the guard.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("role not allowed to modify news")
)

// Claims are the token claims the guard reads.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// User is the authenticated caller stored in the request context.
type User struct {
	Subject string
	Role    string
}

// UserFromContext returns the caller set by Guard.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(ctxUser).(User)
	return u, ok
}

// Guard returns middleware that admits requests bearing a valid token for
// an admin or editor. An empty secret disables the guard.
func Guard(secret []byte, logger *slog.Logger) func(http.Handler) http.Handler {
	if len(secret) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := Authenticate(r.Header.Get("Authorization"), secret)
			if err != nil {
				recordGuard(resultFor(err))
				logger.Warn("news write rejected",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("path", r.URL.Path),
					slog.String("reason", err.Error()))
				if errors.Is(err, ErrForbidden) {
					respond.Fail(w, http.StatusForbidden, "Not Allowed", err.Error())
					return
				}
				respond.Fail(w, http.StatusUnauthorized, "Not Authorized", err.Error())
				return
			}
			recordGuard(resultAllowed)
			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authenticate validates an Authorization header value.
func Authenticate(header string, secret []byte) (User, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return User{}, ErrMissingToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(header[len(prefix):]), &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return User{}, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	if claims.Role != RoleAdmin && claims.Role != RoleEditor {
		return User{}, fmt.Errorf("%w: %q", ErrForbidden, claims.Role)
	}
	return User{Subject: claims.Subject, Role: claims.Role}, nil
}

// IssueToken signs a token for subject with the given role and lifetime.
func IssueToken(secret []byte, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return tok.SignedString(secret)
}
