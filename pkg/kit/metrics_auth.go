package kit

import (
	"net/http"
	"strings"
)

// MetricsAuth gates /metrics behind a static bearer token. An empty
// configured token locks the endpoint rather than opening it.
func MetricsAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			authz := r.Header.Get("Authorization")
			bearer, ok := strings.CutPrefix(authz, "Bearer ")
			if !ok || bearer != token {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
