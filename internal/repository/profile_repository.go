package repository

import (
	"context"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the caller's profile
func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	var profile domain.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", ownerID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateIfMissing inserts the profile unless one already exists for the user
func (r *ProfileRepository) CreateIfMissing(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(profile).Error
}

// Update writes every column of the caller's profile
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	ownerID, err := OwnerID(ctx)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(profile).
		Where("user_id = ?", ownerID).
		Select("*").
		Omit("user_id", "created_at").
		Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
