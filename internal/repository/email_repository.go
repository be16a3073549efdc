package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
)

// reviewableStatuses are the states approve and approve-all move from
var reviewableStatuses = []domain.EmailStatus{domain.EmailStatusDraft, domain.EmailStatusNeedsReview}

type EmailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

// CreateBatch inserts all emails of a generation run in one transaction
func (r *EmailRepository) CreateBatch(ctx context.Context, emails []domain.OutboundEmail) error {
	if len(emails) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&emails, 200).Error
	})
}

func (r *EmailRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OutboundEmail, error) {
	var email domain.OutboundEmail
	if err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).First(&email, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &email, nil
}

// List returns the caller's emails, newest first
func (r *EmailRepository) List(ctx context.Context) ([]domain.OutboundEmail, error) {
	var emails []domain.OutboundEmail
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).
		Order("created_at DESC").
		Order("contact_email ASC").
		Find(&emails).Error
	return emails, err
}

// ListByStatus returns the caller's emails in the given status, oldest first
func (r *EmailRepository) ListByStatus(ctx context.Context, status domain.EmailStatus) ([]domain.OutboundEmail, error) {
	var emails []domain.OutboundEmail
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&emails).Error
	return emails, err
}

// UpdateContent replaces subject and body without touching the status
func (r *EmailRepository) UpdateContent(ctx context.Context, email *domain.OutboundEmail) error {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(email)).
		Where("status <> ?", domain.EmailStatusSent).
		Updates(map[string]interface{}{"subject": email.Subject, "body": email.Body})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Approve moves one draft or needs_review email to approved. It reports false when
// the email was not in a reviewable state.
func (r *EmailRepository) Approve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.OutboundEmail{})).
		Where("id = ? AND status IN ?", id, reviewableStatuses).
		Updates(map[string]interface{}{
			"status":      domain.EmailStatusApproved,
			"approved":    true,
			"approved_at": at,
		})
	return result.RowsAffected > 0, result.Error
}

// ApproveAll approves every reviewable email of the caller and returns how many moved
func (r *EmailRepository) ApproveAll(ctx context.Context, at time.Time) (int64, error) {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.OutboundEmail{})).
		Where("status IN ?", reviewableStatuses).
		Updates(map[string]interface{}{
			"status":      domain.EmailStatusApproved,
			"approved":    true,
			"approved_at": at,
		})
	return result.RowsAffected, result.Error
}

// SetStatus moves an email from one status to another and reports whether it did
func (r *EmailRepository) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.EmailStatus) (bool, error) {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.OutboundEmail{})).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected > 0, result.Error
}

// MarkSent records a successful delivery of an approved email
func (r *EmailRepository) MarkSent(ctx context.Context, id uuid.UUID, providerMessageID string, at time.Time) error {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.OutboundEmail{})).
		Where("id = ? AND status = ?", id, domain.EmailStatusApproved).
		Updates(map[string]interface{}{
			"status":              domain.EmailStatusSent,
			"sent_at":             at,
			"provider_message_id": providerMessageID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Where("id = ?", id).Delete(&domain.OutboundEmail{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountCreditsSince counts emails created at or after since whose generation consumed AI credits
func (r *EmailRepository) CountCreditsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.OutboundEmail{})).
		Where("generation_mode IN ? AND created_at >= ?",
			[]domain.GenerationMode{domain.GenerationModeHybrid, domain.GenerationModeAI}, since).
		Count(&count).Error
	return count, err
}

// CountSentSince counts real sends at or after since
func (r *EmailRepository) CountSentSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.OutboundEmail{})).
		Where("status = ? AND sent_at >= ?", domain.EmailStatusSent, since).
		Count(&count).Error
	return count, err
}
