package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/grocery-inventory/internal/http/ratelimit"
)

var allowedOrigins = "*"

// SetAllowedOrigins configures the origins the CORS middleware accepts, as a
// comma-separated list. "*" allows any origin.
func SetAllowedOrigins(origins string) {
	if strings.TrimSpace(origins) != "" {
		allowedOrigins = origins
	}
}

// CORSMiddleware allows the browser client to call the API cross-origin with
// the methods the contract exposes. Preflight requests are answered directly.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string) bool {
	if allowedOrigins == "*" {
		return true
	}
	for _, o := range strings.Split(allowedOrigins, ",") {
		if strings.EqualFold(strings.TrimSpace(o), origin) {
			return true
		}
	}
	return false
}

// RateLimitMiddleware applies a per-client token bucket and rejects
// over-limit requests with 429.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ratelimit.GetVisitor(clientIP(r)).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
