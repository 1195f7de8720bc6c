package ctxutil

import (
	"context"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromCtx extracts the authenticated user from the context.
// Returns false if the value is missing, has a zero ID, or has the wrong type.
func UserFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	if !ok || u.ID == 0 {
		return domain.User{}, false
	}
	return u, true
}

// UserIDFromCtx extracts the authenticated user's ID from the context.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	u, ok := UserFromCtx(ctx)
	return u.ID, ok
}

// IsAdminCtx reports whether the authenticated user is an administrator.
func IsAdminCtx(ctx context.Context) bool {
	u, ok := UserFromCtx(ctx)
	return ok && u.IsAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
