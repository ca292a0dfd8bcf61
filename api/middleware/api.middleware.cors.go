// FilePath: api/middleware/api.middleware.cors.go
package middleware

import (
	"net/http"
	"time"

	"github.com/GYRAG/beetkar-hub/internal/config"
	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
)

// CORS wraps a handler with permissive cross-origin headers so the
// dashboard can call the API from any origin. Preflight OPTIONS requests
// are answered here, before routing. Every OPTIONS request gets an empty
// 200, including ones carrying an Origin without a requested method,
// which gorilla/handlers alone would reject as a malformed preflight.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		withCORS := handlers.CORS(
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods(cfg.AllowedMethods),
			handlers.AllowedHeaders(cfg.AllowedHeaders),
		)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions && r.Header.Get("Origin") != "" &&
				r.Header.Get("Access-Control-Request-Method") == "" {
				w.Header().Set("Access-Control-Allow-Origin", allowOriginValue(cfg, r))
				w.WriteHeader(http.StatusOK)
				return
			}
			withCORS.ServeHTTP(w, r)
		})
	}
}

func allowOriginValue(cfg config.CORSConfig, r *http.Request) string {
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			return "*"
		}
		if origin == r.Header.Get("Origin") {
			return origin
		}
	}
	return ""
}

// Recovery converts handler panics into plain 500 responses instead of
// dropping the connection.
func Recovery() func(http.Handler) http.Handler {
	return handlers.RecoveryHandler()
}

// RequestLogger logs one line per request with method, path and duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		nuts.L.Infof("[API] %s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
