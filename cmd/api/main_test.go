package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-portal/internal/config"
	memRepo "news-portal/internal/infra/adapter/persistence/memory"
	"news-portal/internal/resilience/circuitbreaker"
	"news-portal/pkg/security/csp"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := circuitbreaker.NewArticleRepository(memRepo.NewArticleRepo(), circuitbreaker.StoreConfig())
	return setupServer(config.Default(), slog.New(slog.NewJSONHandler(io.Discard, nil)), store)
}

func TestSetupServer_ServesAPIDocs(t *testing.T) {
	srv := newTestServer(t)

	t.Run("ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
		assert.Equal(t, csp.SwaggerUI().Build(), rec.Header().Get("Content-Security-Policy"))
	})

	t.Run("document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/news/get-all-news")
	})
}

func TestSetupServer_NewsRoutesKeepAPIPolicy(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/news/get-all-news?pageNo=9223372036854775807&pageLimit=2", nil))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, csp.API().Build(), rec.Header().Get("Content-Security-Policy"))
}
