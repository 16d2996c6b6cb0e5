package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"KanbanWebService/response"
)

// RateLimit rejects requests with 429 once limiter runs out of tokens.
// A nil limiter lets every request through.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				response.JSON(w, http.StatusTooManyRequests, response.Message{
					Status: "Request Failed",
					Body:   "The API is at capacity, try again later.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter returns nil when rps is not positive.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
