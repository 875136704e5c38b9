package middleware

import (
	"net/http"
	"strings"
)

const apiPrefix = "/api/"

// Headers applies CORS headers to API routes and hardening headers to
// everything else. OPTIONS requests on API routes are answered directly.
func Headers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		if !isAPIPath(r.URL.Path) {
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "origin-when-cross-origin")
			next.ServeHTTP(w, r)
			return
		}

		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAPIPath(path string) bool {
	return path == strings.TrimSuffix(apiPrefix, "/") || strings.HasPrefix(path, apiPrefix)
}

// MaxBodySize caps request bodies at limit bytes.
func MaxBodySize(limit int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
