package handler

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// RequireAdminToken gates admin routes behind a bearer token when one is
// configured. With an empty token the routes stay open, matching
// deployments that gate the admin UI client-side only.
func RequireAdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter provides IP-based rate limiting using a sliding window. Used
// on the public contact form to slow down spam.
type RateLimiter struct {
	maxPerMinute int
	mu           sync.Mutex
	clients      map[string][]time.Time
}

// NewRateLimiter creates a rate limiter with the given requests-per-minute limit.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute: maxPerMinute,
		clients:      make(map[string][]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop periodically drops clients whose window has fully expired.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-time.Minute)
		rl.mu.Lock()
		for ip, stamps := range rl.clients {
			if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware wraps next with the per-IP limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		now := time.Now()
		windowStart := now.Add(-time.Minute)

		rl.mu.Lock()
		stamps := rl.clients[ip]
		valid := stamps[:0]
		for _, ts := range stamps {
			if ts.After(windowStart) {
				valid = append(valid, ts)
			}
		}

		if len(valid) >= rl.maxPerMinute {
			rl.clients[ip] = valid
			rl.mu.Unlock()
			writeError(w, http.StatusTooManyRequests, "rate_limit_exceeded")
			return
		}

		rl.clients[ip] = append(valid, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
