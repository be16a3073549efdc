package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mailer"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// SenderDomainService registers the caller's sending domain with the mail
// provider and mirrors its verification state on the profile
type SenderDomainService struct {
	profileRepo *repository.ProfileRepository
	profiles    *ProfileService
	domains     mailer.DomainManager
	logger      *zap.Logger
}

func NewSenderDomainService(
	profileRepo *repository.ProfileRepository,
	profiles *ProfileService,
	domains mailer.DomainManager,
	logger *zap.Logger,
) *SenderDomainService {
	return &SenderDomainService{
		profileRepo: profileRepo,
		profiles:    profiles,
		domains:     domains,
		logger:      logger,
	}
}

func toSenderDomainDTO(profile *domain.Profile) *domain.SenderDomainDTO {
	dto := &domain.SenderDomainDTO{
		Domain: profile.SenderDomain,
		Status: profile.SenderDomainStatus,
	}
	if len(profile.SenderDomainRecords) > 0 {
		dto.Records = make([]domain.DNSRecordDTO, len(profile.SenderDomainRecords))
		for i, r := range profile.SenderDomainRecords {
			dto.Records[i] = domain.DNSRecordDTO{Name: r.Name, Type: r.Type, Value: r.Value, Status: r.Status}
		}
	}
	return dto
}

func (s *SenderDomainService) store(ctx context.Context, profile *domain.Profile, info *mailer.DomainInfo) error {
	if info == nil {
		profile.SenderDomain = ""
		profile.SenderDomainID = ""
		profile.SenderDomainStatus = domain.SenderDomainNone
		profile.SenderDomainRecords = nil
	} else {
		profile.SenderDomain = info.Name
		profile.SenderDomainID = info.ID
		profile.SenderDomainStatus = domain.SenderDomainStatus(mailer.NormalizeDomainStatus(info.Status))
		// the provider only lists records on creation
		if len(info.Records) > 0 {
			records := make([]domain.DNSRecord, len(info.Records))
			for i, r := range info.Records {
				records[i] = domain.DNSRecord{Name: r.Name, Type: r.Type, Value: r.Value, Status: r.Status}
			}
			profile.SenderDomainRecords = datatypes.NewJSONSlice(records)
		}
		if profile.SenderDomainStatus == domain.SenderDomainVerified {
			for i := range profile.SenderDomainRecords {
				profile.SenderDomainRecords[i].Status = string(domain.SenderDomainVerified)
			}
		}
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return fmt.Errorf("failed to save sender domain: %w", mapRepoError(err, ErrNotFound))
	}
	return nil
}

// Add registers a domain. Re-adding the registered domain returns its current state.
func (s *SenderDomainService) Add(ctx context.Context, req *domain.AddSenderDomainRequest) (*domain.SenderDomainDTO, error) {
	profile, err := s.profiles.load(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(req.Domain))
	if name == "" {
		return nil, fmt.Errorf("%w: domain is required", ErrInvalidInput)
	}
	if profile.SenderDomainID != "" {
		if strings.EqualFold(profile.SenderDomain, name) {
			return s.Get(ctx)
		}
		return nil, fmt.Errorf("%w: remove %s before adding another domain", ErrConflict, profile.SenderDomain)
	}

	info, err := s.domains.Create(ctx, name)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if err := s.store(ctx, profile, info); err != nil {
		return nil, err
	}

	s.logger.Info("Sender domain registered",
		zap.String("user_id", profile.UserID.String()),
		zap.String("domain", info.Name),
	)
	return toSenderDomainDTO(profile), nil
}

// Get refreshes the domain state from the provider. A domain the provider no
// longer knows is cleared from the profile.
func (s *SenderDomainService) Get(ctx context.Context) (*domain.SenderDomainDTO, error) {
	profile, err := s.profiles.load(ctx)
	if err != nil {
		return nil, err
	}
	if profile.SenderDomainID == "" {
		return toSenderDomainDTO(profile), nil
	}

	info, err := s.domains.Get(ctx, profile.SenderDomainID)
	if errors.Is(err, mailer.ErrDomainNotFound) {
		if err := s.store(ctx, profile, nil); err != nil {
			return nil, err
		}
		return toSenderDomainDTO(profile), nil
	}
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if err := s.store(ctx, profile, info); err != nil {
		return nil, err
	}
	return toSenderDomainDTO(profile), nil
}

// Verify asks the provider to check the DNS records again
func (s *SenderDomainService) Verify(ctx context.Context) (*domain.SenderDomainDTO, error) {
	profile, err := s.profiles.load(ctx)
	if err != nil {
		return nil, err
	}
	if profile.SenderDomainID == "" {
		return nil, ErrNoSenderDomain
	}
	if err := s.domains.Verify(ctx, profile.SenderDomainID); err != nil {
		if errors.Is(err, mailer.ErrDomainNotFound) {
			return nil, ErrNoSenderDomain
		}
		return nil, &TransportError{Err: err}
	}
	return s.Get(ctx)
}

// Remove deletes the domain at the provider and clears it from the profile
func (s *SenderDomainService) Remove(ctx context.Context) error {
	profile, err := s.profiles.load(ctx)
	if err != nil {
		return err
	}
	if profile.SenderDomainID == "" {
		return ErrNoSenderDomain
	}
	if err := s.domains.Remove(ctx, profile.SenderDomainID); err != nil && !errors.Is(err, mailer.ErrDomainNotFound) {
		return &TransportError{Err: err}
	}
	return s.store(ctx, profile, nil)
}
