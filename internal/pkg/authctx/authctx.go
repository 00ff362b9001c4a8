// Package authctx carries the authenticated user through the call chain.
package authctx

import "context"

type userIDKey struct{}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID reports the user attached by WithUserID. ok is false for
// anonymous contexts and for non-positive ids.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
