package middleware

import (
	"net/http"

	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// RequireAdmin rejects requests whose authenticated user is not an admin.
// It must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
