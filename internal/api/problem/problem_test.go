package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	req.Header.Set("X-Trace-ID", "trace-123")

	Write(rec, req, http.StatusUnprocessableEntity, Type("insufficient-funds"), "Insufficient Funds", "balance too low")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var got Details
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://errors.finops.koladefi.dev/insufficient-funds", got.Type)
	assert.Equal(t, "Insufficient Funds", got.Title)
	assert.Equal(t, http.StatusUnprocessableEntity, got.Status)
	assert.Equal(t, "balance too low", got.Detail)
	assert.Equal(t, "/api/v1/transactions", got.Instance)
	assert.Equal(t, "trace-123", got.RequestID)
}

func TestWrite_Defaults(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	Write(rec, req, http.StatusNotFound, "", "", "no such account")

	var got Details
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "about:blank", got.Type)
	assert.Equal(t, "Not Found", got.Title)
	assert.Empty(t, got.RequestID)
}
