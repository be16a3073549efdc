package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
)

// ErrDuplicateAttempt is returned when an idempotency key is already reserved
var ErrDuplicateAttempt = errors.New("send attempt already recorded")

type SendAttemptRepository struct {
	db *gorm.DB
}

func NewSendAttemptRepository(db *gorm.DB) *SendAttemptRepository {
	return &SendAttemptRepository{db: db}
}

// Reserve records the key before the transport is called
func (r *SendAttemptRepository) Reserve(ctx context.Context, key string, emailID uuid.UUID) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}
	attempt := &domain.SendAttempt{UserID: ownerID, IdempotencyKey: key, EmailID: emailID}
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAttempt
		}
		return err
	}
	return nil
}

// Release removes a reservation so the send can be retried
func (r *SendAttemptRepository) Release(ctx context.Context, key string) error {
	return ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).
		Where("idempotency_key = ?", key).
		Delete(&domain.SendAttempt{}).Error
}

// DeleteOlderThan prunes reservations of all users created before cutoff.
// It is housekeeping run without a caller, so it is not owner scoped.
func (r *SendAttemptRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&domain.SendAttempt{})
	return result.RowsAffected, result.Error
}
