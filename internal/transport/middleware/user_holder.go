package middleware

import "context"

type holderKey struct{}

// userHolder lets Auth report the authenticated user back to Logger, which
// runs outside the context Auth derives.
type userHolder struct {
	userID int64
}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func recordUser(ctx context.Context, userID int64) {
	if h, ok := ctx.Value(holderKey{}).(*userHolder); ok {
		h.userID = userID
	}
}
