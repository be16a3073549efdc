package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultLanguage = "English"

type ProfileService struct {
	profileRepo *repository.ProfileRepository
	plans       *config.PlansConfig
	logger      *zap.Logger
}

func NewProfileService(profileRepo *repository.ProfileRepository, plans *config.PlansConfig, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		plans:       plans,
		logger:      logger,
	}
}

// load returns the caller's profile, creating the default one on first use
func (s *ProfileService) load(ctx context.Context) (*domain.Profile, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Get(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", mapRepoError(err, ErrNotFound))
	}

	threshold := s.plans.DefaultWarningThreshold
	if threshold <= 0 {
		threshold = 80
	}
	defaults := &domain.Profile{
		UserID:                userCtx.UserID,
		DefaultTone:           domain.ToneProfessional,
		DefaultGoal:           domain.GoalSales,
		DefaultLanguage:       defaultLanguage,
		Plan:                  domain.PlanFree,
		UsageWarningThreshold: threshold,
	}
	if err := s.profileRepo.CreateIfMissing(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.logger.Info("Default profile created", zap.String("user_id", userCtx.UserID.String()))

	profile, err = s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", mapRepoError(err, ErrNotFound))
	}
	return profile, nil
}

// Get returns the caller's profile
func (s *ProfileService) Get(ctx context.Context) (*domain.ProfileDTO, error) {
	profile, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToProfileDTO(profile)
	return &dto, nil
}

// Update applies a partial patch to the caller's profile
func (s *ProfileService) Update(ctx context.Context, req *domain.UpdateProfileRequest) (*domain.ProfileDTO, error) {
	profile, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.DefaultTone != nil {
		if !req.DefaultTone.IsValid() {
			return nil, fmt.Errorf("%w: unknown tone %q", ErrInvalidInput, *req.DefaultTone)
		}
		profile.DefaultTone = *req.DefaultTone
	}
	if req.DefaultGoal != nil {
		if !req.DefaultGoal.IsValid() {
			return nil, fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, *req.DefaultGoal)
		}
		profile.DefaultGoal = *req.DefaultGoal
	}
	if req.DefaultLanguage != nil {
		profile.DefaultLanguage = strings.TrimSpace(*req.DefaultLanguage)
	}
	if req.SenderEmail != nil {
		profile.SenderEmail = strings.ToLower(strings.TrimSpace(*req.SenderEmail))
	}
	if req.SenderName != nil {
		profile.SenderName = strings.TrimSpace(*req.SenderName)
	}
	if req.SignatureHTML != nil {
		profile.SignatureHTML = *req.SignatureHTML
	}
	if req.Font != nil {
		profile.Font = *req.Font
	}
	if req.Onboarded != nil {
		profile.Onboarded = *req.Onboarded
	}
	if req.UsageWarningThreshold != nil {
		if *req.UsageWarningThreshold < 1 || *req.UsageWarningThreshold > 100 {
			return nil, fmt.Errorf("%w: usage warning threshold must be between 1 and 100", ErrInvalidInput)
		}
		profile.UsageWarningThreshold = *req.UsageWarningThreshold
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", mapRepoError(err, ErrNotFound))
	}

	dto := mapper.ToProfileDTO(profile)
	return &dto, nil
}
