package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/generator"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/metrics"
	"github.com/sendsafe/sendsafe-api/internal/render"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// GenerationService turns a campaign template into one draft email per recipient
type GenerationService struct {
	contactRepo  *repository.ContactRepository
	emailRepo    *repository.EmailRepository
	draftRepo    *repository.DraftRepository
	profiles     *ProfileService
	usage        *UsageService
	personalizer generator.Personalizer
	logger       *zap.Logger
}

func NewGenerationService(
	contactRepo *repository.ContactRepository,
	emailRepo *repository.EmailRepository,
	draftRepo *repository.DraftRepository,
	profiles *ProfileService,
	usage *UsageService,
	personalizer generator.Personalizer,
	logger *zap.Logger,
) *GenerationService {
	return &GenerationService{
		contactRepo:  contactRepo,
		emailRepo:    emailRepo,
		draftRepo:    draftRepo,
		profiles:     profiles,
		usage:        usage,
		personalizer: personalizer,
		logger:       logger,
	}
}

func validateGenerateRequest(req *domain.GenerateEmailsRequest) error {
	if strings.TrimSpace(req.CampaignName) == "" {
		return fmt.Errorf("%w: campaign name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Subject) == "" {
		return fmt.Errorf("%w: template subject is required", ErrInvalidInput)
	}
	if !render.HasText(req.Body) {
		return fmt.Errorf("%w: template body is required", ErrInvalidInput)
	}
	if len(dedupeIDs(req.ContactIDs)) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidInput)
	}
	if req.Mode != "" && domain.GenerationMode(req.Mode) != domain.GenerationModeHybrid {
		return fmt.Errorf("%w: unsupported generation mode %q", ErrInvalidInput, req.Mode)
	}
	if req.Tone != "" && !req.Tone.IsValid() {
		return fmt.Errorf("%w: unknown tone %q", ErrInvalidInput, req.Tone)
	}
	if req.Goal != "" && !req.Goal.IsValid() {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, req.Goal)
	}
	return nil
}

// Generate creates one draft email per recipient in a new campaign.
// Credentials, input and quota are checked before any generation call. A failed
// generation for one recipient falls back to the template as written.
func (s *GenerationService) Generate(ctx context.Context, req *domain.GenerateEmailsRequest) ([]domain.OutboundEmailDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateGenerateRequest(req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.load(ctx)
	if err != nil {
		return nil, err
	}
	tone, goal, language := req.Tone, req.Goal, strings.TrimSpace(req.Language)
	if tone == "" {
		tone = profile.DefaultTone
	}
	if goal == "" {
		goal = profile.DefaultGoal
	}
	if language == "" {
		language = profile.DefaultLanguage
	}

	ids := dedupeIDs(req.ContactIDs)
	contacts, err := s.contactRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", mapRepoError(err, ErrContactNotFound))
	}
	if len(contacts) != len(ids) {
		return nil, fmt.Errorf("%w: %d of %d recipients", ErrContactNotFound, len(ids)-len(contacts), len(ids))
	}

	if _, err := s.usage.ReserveCredits(ctx, len(contacts)); err != nil {
		return nil, err
	}

	campaignID := uuid.New()
	campaignName := strings.TrimSpace(req.CampaignName)
	spans := render.AISpans(req.Subject + "\n" + req.Body)

	emails := make([]domain.OutboundEmail, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		subject, body := s.personalize(ctx, c, req, spans, tone, goal, language)

		leadID := c.ID
		email := domain.OutboundEmail{
			LeadID:         &leadID,
			Company:        c.Company,
			ContactName:    c.ContactName,
			ContactEmail:   c.ContactEmail,
			Subject:        subject,
			Body:           body,
			Confidence:     0,
			Status:         domain.EmailStatusDraft,
			Issues:         datatypes.NewJSONSlice([]string{}),
			CampaignID:     &campaignID,
			CampaignName:   campaignName,
			GenerationMode: domain.GenerationModeHybrid,
		}
		email.UserID = userCtx.UserID
		emails[i] = email
	}

	if err := s.emailRepo.CreateBatch(ctx, emails); err != nil {
		return nil, fmt.Errorf("failed to save generated emails: %w", err)
	}

	s.logger.Info("Campaign generated",
		zap.String("user_id", userCtx.UserID.String()),
		zap.String("campaign_id", campaignID.String()),
		zap.Int("emails", len(emails)),
	)

	if req.DraftID != nil {
		if err := s.draftRepo.Delete(ctx, *req.DraftID); err != nil {
			s.logger.Warn("Failed to delete draft after generation",
				zap.String("draft_id", req.DraftID.String()),
				zap.Error(err),
			)
		}
	}

	return mapper.ToOutboundEmailDTOs(emails), nil
}

// personalize returns the generated subject and body for one contact, or the raw
// template when the generator fails
func (s *GenerationService) personalize(
	ctx context.Context,
	c *domain.Contact,
	req *domain.GenerateEmailsRequest,
	spans []string,
	tone domain.Tone,
	goal domain.Goal,
	language string,
) (string, string) {
	recipient := render.RecipientFromContact(c)
	start := time.Now()

	out, err := s.personalizer.Personalize(ctx, generator.PersonalizeRequest{
		Recipient: recipient,
		Subject:   render.Substitute(req.Subject, recipient),
		Body:      render.Substitute(req.Body, recipient),
		Spans:     spans,
		Tone:      tone,
		Goal:      goal,
		Language:  language,
	})
	metrics.ObserveGeneration(time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("Generation failed, using template as written",
			zap.String("contact_id", c.ID.String()),
			zap.Error(err),
		)
		metrics.EmailGenerated(metrics.OutcomeFallback)
		return req.Subject, req.Body
	}

	metrics.EmailGenerated(metrics.OutcomeAI)
	return out.Subject, out.Body
}
