package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserContext is the authenticated caller. UserID is the owner key of every
// row the caller creates.
type UserContext struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type ctxKey int

const (
	userKey ctxKey = iota
	observerKey
)

// WithUserContext attaches the caller and notifies an observer installed by
// WithObserver higher up the middleware chain
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	if observe, ok := ctx.Value(observerKey).(func(*UserContext)); ok {
		observe(user)
	}
	return context.WithValue(ctx, userKey, user)
}

// WithObserver registers fn to be called when a caller is attached to a
// context derived from ctx. Outer middleware uses it to learn who the caller was.
func WithObserver(ctx context.Context, fn func(*UserContext)) context.Context {
	return context.WithValue(ctx, observerKey, fn)
}

// FromContext returns the caller, rejecting a missing or zero user id
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userKey).(*UserContext)
	if !ok || user == nil || user.UserID == uuid.Nil {
		return nil, false
	}
	return user, true
}
