package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/koladefi/financial-operations/internal/api/problem"
	"github.com/koladefi/financial-operations/internal/observability"
	"github.com/koladefi/financial-operations/internal/ratelimit"
)

// AdmissionLimiter gates API requests through the sliding-window limiter
// before any validation or locking happens. Callers are keyed by the
// X-Caller-ID header when present, falling back to client IP.
func AdmissionLimiter(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := callerKey(r)
			if !limiter.Admit(key, time.Now()) {
				observability.IncrementRateLimited("caller")
				problem.Write(
					w,
					r,
					http.StatusTooManyRequests,
					problem.Type("rate-limit-exceeded"),
					http.StatusText(http.StatusTooManyRequests),
					"Rate limit exceeded for this caller",
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if caller := r.Header.Get("X-Caller-ID"); caller != "" {
		return caller
	}
	key, err := httprate.KeyByIP(r)
	if err != nil {
		return r.RemoteAddr
	}
	return key
}

// PublicRateLimiter applies a blunt per-IP limit on unauthenticated routes.
func PublicRateLimiter(rps int) func(http.Handler) http.Handler {
	return httprate.Limit(rps, time.Second,
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			observability.IncrementRateLimited("public")
			problem.Write(
				w,
				r,
				http.StatusTooManyRequests,
				problem.Type("rate-limit-exceeded"),
				http.StatusText(http.StatusTooManyRequests),
				fmt.Sprintf("Rate limit of %d req/s exceeded for this IP", rps),
			)
		}),
	)
}
