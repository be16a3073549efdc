package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
)

// MonthStart returns midnight UTC on the first day of t's month
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// UsageService computes monthly consumption against the plan allotments.
// A credit is one AI-generated email or one contact enrichment.
type UsageService struct {
	profiles    *ProfileService
	emailRepo   *repository.EmailRepository
	contactRepo *repository.ContactRepository
	plans       *config.PlansConfig
	logger      *zap.Logger
	now         func() time.Time
}

func NewUsageService(
	profiles *ProfileService,
	emailRepo *repository.EmailRepository,
	contactRepo *repository.ContactRepository,
	plans *config.PlansConfig,
	logger *zap.Logger,
) *UsageService {
	return &UsageService{
		profiles:    profiles,
		emailRepo:   emailRepo,
		contactRepo: contactRepo,
		plans:       plans,
		logger:      logger,
		now:         time.Now,
	}
}

type usage struct {
	plan        domain.Plan
	threshold   int
	periodStart time.Time
	limits      config.PlanLimits
	creditsUsed int
	sendsUsed   int
}

func (u usage) creditsRemaining() int {
	if r := u.limits.AICredits - u.creditsUsed; r > 0 {
		return r
	}
	return 0
}

func (u usage) sendsRemaining() int {
	if r := u.limits.Sends - u.sendsUsed; r > 0 {
		return r
	}
	return 0
}

func (s *UsageService) current(ctx context.Context) (*usage, error) {
	profile, err := s.profiles.load(ctx)
	if err != nil {
		return nil, err
	}
	since := MonthStart(s.now())

	generated, err := s.emailRepo.CountCreditsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count generated emails: %w", mapRepoError(err, ErrNotFound))
	}
	enriched, err := s.contactRepo.CountEnrichedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count enrichments: %w", mapRepoError(err, ErrNotFound))
	}
	sent, err := s.emailRepo.CountSentSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count sends: %w", mapRepoError(err, ErrNotFound))
	}

	return &usage{
		plan:        profile.Plan,
		threshold:   profile.UsageWarningThreshold,
		periodStart: since,
		limits:      s.plans.Limits(string(profile.Plan)),
		creditsUsed: int(generated + enriched),
		sendsUsed:   int(sent),
	}, nil
}

// ReserveCredits fails with *QuotaExceededError when n exceeds the remaining credits.
// Nothing is written; consumption is derived from the created rows.
func (s *UsageService) ReserveCredits(ctx context.Context, n int) (remaining int, err error) {
	u, err := s.current(ctx)
	if err != nil {
		return 0, err
	}
	remaining = u.creditsRemaining()
	if n > remaining {
		return remaining, &QuotaExceededError{Kind: QuotaCredits, Requested: n, Remaining: remaining}
	}
	return remaining, nil
}

// CheckSends fails with *QuotaExceededError when n real sends exceed the remaining allotment
func (s *UsageService) CheckSends(ctx context.Context, n int) error {
	u, err := s.current(ctx)
	if err != nil {
		return err
	}
	if remaining := u.sendsRemaining(); n > remaining {
		return &QuotaExceededError{Kind: QuotaSends, Requested: n, Remaining: remaining}
	}
	return nil
}

// Summary reports the caller's plan and consumption for the current month
func (s *UsageService) Summary(ctx context.Context) (*domain.UsageSummaryDTO, error) {
	u, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	warning := false
	if u.threshold > 0 {
		if u.limits.AICredits > 0 && u.creditsUsed*100 >= u.limits.AICredits*u.threshold {
			warning = true
		}
		if u.limits.Sends > 0 && u.sendsUsed*100 >= u.limits.Sends*u.threshold {
			warning = true
		}
	}

	return &domain.UsageSummaryDTO{
		Plan:             u.plan,
		PeriodStart:      u.periodStart.Format("2006-01-02T15:04:05Z"),
		CreditsAllotted:  u.limits.AICredits,
		CreditsUsed:      u.creditsUsed,
		CreditsRemaining: u.creditsRemaining(),
		SendsAllotted:    u.limits.Sends,
		SendsUsed:        u.sendsUsed,
		Warning:          warning,
	}, nil
}
