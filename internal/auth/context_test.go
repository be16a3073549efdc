package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(WithUserContext(context.Background(), &UserContext{Email: "nobody@example.com"}))
	assert.False(t, ok, "zero user id is not a caller")

	user := &UserContext{UserID: uuid.New(), Email: "owner@example.com"}
	got, ok := FromContext(WithUserContext(context.Background(), user))
	assert.True(t, ok)
	assert.Same(t, user, got)
}

func TestWithObserver(t *testing.T) {
	var seen *UserContext
	ctx := WithObserver(context.Background(), func(u *UserContext) { seen = u })

	user := &UserContext{UserID: uuid.New()}
	WithUserContext(context.WithValue(ctx, ctxKey(99), "inner"), user)

	assert.Same(t, user, seen)
}
