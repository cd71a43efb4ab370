package rest

import (
	"crypto/subtle"
	"net/http"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
)

// APITokenAuth gates a route group behind the x-api-token header. The gate is
// composed in front of the operations and carries no operation logic of its
// own, so the core can be exercised without any transport layer.
func APITokenAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("x-api-token")
			if presented == "" ||
				subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				writeError(w, errors.NewUnauthorizedError("Unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
