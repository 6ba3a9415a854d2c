package ratelimit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"davenport/internal/platform/logger"
)

// deniedBody is the wire shape of a 429 response
type deniedBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// Middleware enforces the limiter per request. identity maps a request to a
// bucket key; pass nil to derive one from proxy headers and User-Agent.
// A store failure fails open.
func Middleware(l *Limiter, identity func(*http.Request) string) func(http.Handler) http.Handler {
	if identity == nil {
		identity = func(r *http.Request) string {
			return Identity("", r.Header.Get("X-Forwarded-For"), r.Header.Get("X-Real-IP"), r.Header.Get("User-Agent"))
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := identity(r)
			dec, err := l.Allow(r.Context(), id)
			if err != nil {
				logger.C(r.Context()).Warn().Err(err).Str("identity", id).Msg("rate limit check failed, allowing")
				next.ServeHTTP(w, r)
				return
			}
			if dec.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			retry := int((time.Until(dec.ResetAt) + time.Second - 1) / time.Second)
			if retry < 0 {
				retry = 0
			}

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(deniedBody{
				Error:      "Rate limit exceeded",
				Message:    fmt.Sprintf("Too many requests. Please try again in %d seconds.", retry),
				RetryAfter: retry,
			})
		})
	}
}
