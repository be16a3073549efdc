package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mailer"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/metrics"
	"github.com/sendsafe/sendsafe-api/internal/render"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
)

// SendService dispatches approved emails through the mail transport
type SendService struct {
	emailRepo   *repository.EmailRepository
	attemptRepo *repository.SendAttemptRepository
	profiles    *ProfileService
	usage       *UsageService
	transport   mailer.Transport
	logger      *zap.Logger
	now         func() time.Time
}

func NewSendService(
	emailRepo *repository.EmailRepository,
	attemptRepo *repository.SendAttemptRepository,
	profiles *ProfileService,
	usage *UsageService,
	transport mailer.Transport,
	logger *zap.Logger,
) *SendService {
	return &SendService{
		emailRepo:   emailRepo,
		attemptRepo: attemptRepo,
		profiles:    profiles,
		usage:       usage,
		transport:   transport,
		logger:      logger,
		now:         time.Now,
	}
}

// IdempotencyKey identifies one approval of one email. Re-approving after an edit
// does not change it, since approved_at is only set on the first approval.
func IdempotencyKey(email *domain.OutboundEmail) string {
	approvedAt := ""
	if email.ApprovedAt != nil {
		approvedAt = email.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}
	sum := sha256.Sum256([]byte(email.ID.String() + approvedAt))
	return hex.EncodeToString(sum[:])
}

// composeHTML appends the signature and applies the sender's font
func composeHTML(body string, profile *domain.Profile) string {
	out := render.AppendSignature(body, profile.SignatureHTML)
	if font := strings.TrimSpace(profile.Font); font != "" {
		out = fmt.Sprintf(`<div style="font-family: %s">%s</div>`, html.EscapeString(font), out)
	}
	return out
}

// Send delivers one email. With a test recipient the email goes to that address
// instead, in any status, and nothing about the email changes. A real send
// requires an approved email and moves it to sent.
func (s *SendService) Send(ctx context.Context, id uuid.UUID, testRecipient string) (*domain.OutboundEmailDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	email, err := s.emailRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrEmailNotFound)
	}
	return s.send(ctx, userCtx.UserID, email, strings.TrimSpace(testRecipient))
}

func (s *SendService) send(ctx context.Context, userID uuid.UUID, email *domain.OutboundEmail, testRecipient string) (*domain.OutboundEmailDTO, error) {
	isTest := testRecipient != ""
	kind := metrics.SendKindReal
	if isTest {
		kind = metrics.SendKindTest
	}

	if !isTest {
		switch email.Status {
		case domain.EmailStatusApproved:
		case domain.EmailStatusSent:
			return nil, ErrAlreadySent
		default:
			return nil, ErrNotApproved
		}
	}

	profile, err := s.profiles.load(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(profile.SenderEmail) == "" {
		return nil, ErrSenderNotConfigured
	}

	if !isTest {
		if err := s.usage.CheckSends(ctx, 1); err != nil {
			return nil, err
		}
	}

	htmlBody := composeHTML(email.Body, profile)
	msg := mailer.Message{
		From:     profile.SenderEmail,
		FromName: profile.SenderName,
		To:       email.ContactEmail,
		Subject:  email.Subject,
		HTML:     htmlBody,
		Text:     render.ToPlainText(htmlBody),
	}
	if isTest {
		msg.To = testRecipient
	}
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var key string
	if !isTest {
		key = IdempotencyKey(email)
		if err := s.attemptRepo.Reserve(ctx, key, email.ID); err != nil {
			if errors.Is(err, repository.ErrDuplicateAttempt) {
				metrics.EmailSent(kind, metrics.ResultSkipped)
				return nil, ErrAlreadySent
			}
			return nil, fmt.Errorf("failed to record send attempt: %w", mapRepoError(err, ErrEmailNotFound))
		}
	}

	messageID, err := s.transport.Send(ctx, msg)
	if err != nil {
		metrics.EmailSent(kind, metrics.ResultError)
		if !isTest {
			if relErr := s.attemptRepo.Release(ctx, key); relErr != nil {
				s.logger.Error("Failed to release send attempt",
					zap.String("email_id", email.ID.String()),
					zap.Error(relErr),
				)
			}
		}
		s.logger.Warn("Email send failed",
			zap.String("user_id", userID.String()),
			zap.String("email_id", email.ID.String()),
			zap.Bool("test", isTest),
			zap.Error(err),
		)
		return nil, &TransportError{Err: err}
	}
	metrics.EmailSent(kind, metrics.ResultSuccess)

	if isTest {
		s.logger.Info("Test email sent",
			zap.String("email_id", email.ID.String()),
			zap.String("message_id", messageID),
		)
		dto := mapper.ToOutboundEmailDTO(email)
		return &dto, nil
	}

	sentAt := s.now().UTC()
	if err := s.emailRepo.MarkSent(ctx, email.ID, messageID, sentAt); err != nil {
		// The attempt key stays reserved: the message left, so it must not go out twice.
		return nil, fmt.Errorf("failed to mark email sent: %w", mapRepoError(err, ErrEmailNotFound))
	}
	email.Status = domain.EmailStatusSent
	email.SentAt = &sentAt
	email.ProviderMessageID = messageID

	s.logger.Info("Email sent",
		zap.String("user_id", userID.String()),
		zap.String("email_id", email.ID.String()),
		zap.String("message_id", messageID),
	)
	dto := mapper.ToOutboundEmailDTO(email)
	return &dto, nil
}

// SendAllApproved sends every approved email independently. One failure does not
// stop the others.
func (s *SendService) SendAllApproved(ctx context.Context) (*domain.BatchResult, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	emails, err := s.emailRepo.ListByStatus(ctx, domain.EmailStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved emails: %w", err)
	}

	result := &domain.BatchResult{Attempted: len(emails), Failed: []domain.BatchFailure{}}
	for i := range emails {
		if _, err := s.send(ctx, userCtx.UserID, &emails[i], ""); err != nil {
			result.Failed = append(result.Failed, domain.BatchFailure{ID: emails[i].ID, Error: err.Error()})
			continue
		}
		result.Succeeded++
	}

	s.logger.Info("Approved emails dispatched",
		zap.String("user_id", userCtx.UserID.String()),
		zap.Int("attempted", result.Attempted),
		zap.Int("succeeded", result.Succeeded),
	)
	return result, nil
}
