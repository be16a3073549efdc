package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, tpl *domain.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmailTemplate, error) {
	var tpl domain.EmailTemplate
	if err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).First(&tpl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	var templates []domain.EmailTemplate
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Update(ctx context.Context, tpl *domain.EmailTemplate) error {
	return saveOwned(ctx, r.db.WithContext(ctx), tpl)
}

func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Where("id = ?", id).Delete(&domain.EmailTemplate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
