package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"gorm.io/gorm"
)

// requireUser returns the authenticated caller or ErrUnauthorized
func requireUser(ctx context.Context) (*auth.UserContext, error) {
	userCtx, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return userCtx, nil
}

// mapRepoError turns repository errors into service errors; notFound replaces
// gorm.ErrRecordNotFound
func mapRepoError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, repository.ErrNoOwner):
		return ErrUnauthorized
	}
	return err
}

// dedupeIDs drops repeated and nil ids, keeping the first occurrence order
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
