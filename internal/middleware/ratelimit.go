package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/goaltrack-dev/goaltrack/internal/middleware/ratelimiter"
	"github.com/goaltrack-dev/goaltrack/internal/utils"
)

// RateLimit throttles requests per identity extracted by getIdentity.
func RateLimit(rl *ratelimiter.Limiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				utils.WriteMessage(w, http.StatusTooManyRequests, "Rate limit exceeded, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIP extracts the client IP from RemoteAddr. Proxy headers are not
// trusted (no reverse proxy in front).
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, use it directly
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", fmt.Errorf("invalid IP address: %s", ip)
	}

	return ip, nil
}
