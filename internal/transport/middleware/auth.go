package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

type identityVerifier interface {
	Verify(ctx context.Context, token string) (domain.User, error)
}

// Auth resolves the bearer token to a user and stores it in the request
// context. Requests without a valid token never reach next: an unreachable
// identity provider yields 503, anything else 401.
func Auth(verifier identityVerifier, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			user, err := verifier.Verify(r.Context(), token)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrServiceUnavailable):
				logger.WarnContext(r.Context(), "identity provider unavailable", slog.String("error", err.Error()))
				writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "could not reach the user service")
				return
			default:
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				unauthorized(w, "could not validate credentials")
				return
			}

			recordUser(r.Context(), user.ID)
			ctx := ctxutil.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", msg)
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
