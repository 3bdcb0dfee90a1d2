package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/koladefi/financial-operations/internal/ratelimit"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, caller string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	if caller != "" {
		req.Header.Set("X-Caller-ID", caller)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAdmissionLimiter_BlocksOverLimit(t *testing.T) {
	handler := AdmissionLimiter(ratelimit.New(2, time.Minute))(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "alice").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "alice").Code)

	rec := doRequest(handler, "alice")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "rate-limit-exceeded")
}

func TestAdmissionLimiter_KeysAreIndependent(t *testing.T) {
	handler := AdmissionLimiter(ratelimit.New(1, time.Minute))(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "alice").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "alice").Code)

	assert.Equal(t, http.StatusOK, doRequest(handler, "bob").Code)
}

func TestAdmissionLimiter_FallsBackToIP(t *testing.T) {
	handler := AdmissionLimiter(ratelimit.New(1, time.Minute))(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "").Code)
}
