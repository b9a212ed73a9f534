package server

import "net/http"

// SecurityConfig controls the response headers added to every request.
type SecurityConfig struct {
	// AllowedMethods lists the methods served; others get 405.
	AllowedMethods []string
	// NoStore disables caching of responses.
	NoStore bool
}

// DefaultSecurityConfig allows read-only access and disables caching.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		NoStore:        true,
	}
}

// SecurityMiddleware sets hardening headers and rejects methods outside
// config.AllowedMethods before calling next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		if config.NoStore {
			h.Set("Cache-Control", "no-store")
		}

		allowed := len(config.AllowedMethods) == 0
		for _, m := range config.AllowedMethods {
			if r.Method == m {
				allowed = true
				break
			}
		}
		if !allowed {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
