package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Zero(t, wrapped.BytesWritten())
	assert.False(t, wrapped.HeaderWritten())
}

func TestWrap_Idempotent(t *testing.T) {
	once := Wrap(httptest.NewRecorder())
	assert.Same(t, once, Wrap(once))
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusCreated)
	wrapped.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, wrapped.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte(`{"success":true}`))
	require.NoError(t, err)
	_, err = wrapped.Write([]byte("\n"))
	require.NoError(t, err)

	assert.Equal(t, 16, n)
	assert.Equal(t, 17, wrapped.BytesWritten())
	assert.True(t, wrapped.HeaderWritten())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_ResponseController(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	require.NoError(t, http.NewResponseController(wrapped).Flush())
	assert.True(t, rec.Flushed)
}
