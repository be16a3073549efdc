package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
)

// ReviewService moves outbound emails through draft, needs_review and approved.
// Status never moves backwards and a sent email is never changed again.
type ReviewService struct {
	emailRepo *repository.EmailRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewReviewService(emailRepo *repository.EmailRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		emailRepo: emailRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ReviewService) load(ctx context.Context, id uuid.UUID) (*domain.OutboundEmail, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	email, err := s.emailRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrEmailNotFound)
	}
	return email, nil
}

// Get returns one email of the caller
func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*domain.OutboundEmailDTO, error) {
	email, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToOutboundEmailDTO(email)
	return &dto, nil
}

// ListGrouped returns the caller's emails grouped by campaign, newest campaign first.
// Emails without a campaign are collected under the no-campaign bucket.
func (s *ReviewService) ListGrouped(ctx context.Context) ([]domain.CampaignGroupDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	emails, err := s.emailRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}

	groups := make([]domain.CampaignGroupDTO, 0)
	index := make(map[string]int)
	for i := range emails {
		e := &emails[i]
		key := e.CampaignKey()
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, domain.CampaignGroupDTO{
				CampaignID:   key,
				CampaignName: e.CampaignName,
				Emails:       []domain.OutboundEmailDTO{},
			})
		}
		if groups[pos].CampaignName == "" {
			groups[pos].CampaignName = e.CampaignName
		}
		groups[pos].Emails = append(groups[pos].Emails, mapper.ToOutboundEmailDTO(e))
	}
	return groups, nil
}

// Approve moves an email to approved. Approving an approved email changes nothing.
func (s *ReviewService) Approve(ctx context.Context, id uuid.UUID) (*domain.OutboundEmailDTO, error) {
	email, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch email.Status {
	case domain.EmailStatusSent:
		return nil, fmt.Errorf("%w: email %s is already sent", ErrInvalidTransition, id)
	case domain.EmailStatusApproved:
		dto := mapper.ToOutboundEmailDTO(email)
		return &dto, nil
	}

	if _, err := s.emailRepo.Approve(ctx, id, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to approve email: %w", err)
	}
	return s.Get(ctx, id)
}

// ApproveAll approves every draft and needs_review email of the caller
func (s *ReviewService) ApproveAll(ctx context.Context) (*domain.ApproveAllResult, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.emailRepo.ApproveAll(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to approve emails: %w", err)
	}
	s.logger.Info("Emails approved",
		zap.String("user_id", userCtx.UserID.String()),
		zap.Int64("count", n),
	)
	return &domain.ApproveAllResult{Approved: int(n)}, nil
}

// RequestReview flags a draft email for review
func (s *ReviewService) RequestReview(ctx context.Context, id uuid.UUID) (*domain.OutboundEmailDTO, error) {
	email, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch email.Status {
	case domain.EmailStatusNeedsReview:
	case domain.EmailStatusDraft:
		if _, err := s.emailRepo.SetStatus(ctx, id, domain.EmailStatusDraft, domain.EmailStatusNeedsReview); err != nil {
			return nil, fmt.Errorf("failed to update email status: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s email cannot go back to review", ErrInvalidTransition, email.Status)
	}
	return s.Get(ctx, id)
}

// Edit replaces the subject and/or body of an unsent email. The status is kept.
func (s *ReviewService) Edit(ctx context.Context, id uuid.UUID, req *domain.UpdateEmailRequest) (*domain.OutboundEmailDTO, error) {
	email, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if email.IsTerminal() {
		return nil, fmt.Errorf("%w: a sent email cannot be edited", ErrInvalidTransition)
	}

	if req.Subject != nil {
		email.Subject = *req.Subject
	}
	if req.Body != nil {
		email.Body = *req.Body
	}
	if err := s.emailRepo.UpdateContent(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to update email: %w", mapRepoError(err, ErrEmailNotFound))
	}
	return s.Get(ctx, id)
}

// Delete removes an email in any state
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := requireUser(ctx); err != nil {
		return err
	}
	if err := s.emailRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, ErrEmailNotFound)
	}
	return nil
}
