package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) Create(ctx context.Context, draft *domain.CampaignDraft) error {
	return r.db.WithContext(ctx).Create(draft).Error
}

func (r *DraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CampaignDraft, error) {
	var draft domain.CampaignDraft
	if err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).First(&draft, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &draft, nil
}

// List returns the caller's drafts, most recently edited first
func (r *DraftRepository) List(ctx context.Context) ([]domain.CampaignDraft, error) {
	var drafts []domain.CampaignDraft
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Order("updated_at DESC").Find(&drafts).Error
	return drafts, err
}

func (r *DraftRepository) Update(ctx context.Context, draft *domain.CampaignDraft) error {
	return saveOwned(ctx, r.db.WithContext(ctx), draft)
}

func (r *DraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Where("id = ?", id).Delete(&domain.CampaignDraft{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
