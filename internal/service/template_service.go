package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/render"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
)

type TemplateService struct {
	templateRepo *repository.TemplateRepository
	contactRepo  *repository.ContactRepository
	logger       *zap.Logger
}

func NewTemplateService(templateRepo *repository.TemplateRepository, contactRepo *repository.ContactRepository, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		contactRepo:  contactRepo,
		logger:       logger,
	}
}

func (s *TemplateService) List(ctx context.Context) ([]domain.EmailTemplateDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	dtos := make([]domain.EmailTemplateDTO, len(templates))
	for i := range templates {
		dtos[i] = mapper.ToEmailTemplateDTO(&templates[i])
	}
	return dtos, nil
}

func (s *TemplateService) Create(ctx context.Context, req *domain.SaveTemplateRequest) (*domain.EmailTemplateDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	tpl := &domain.EmailTemplate{
		Name:    strings.TrimSpace(req.Name),
		Subject: req.Subject,
		Body:    req.Body,
	}
	if tpl.Name == "" {
		return nil, fmt.Errorf("%w: template name is required", ErrInvalidInput)
	}
	tpl.UserID = userCtx.UserID
	if err := s.templateRepo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	dto := mapper.ToEmailTemplateDTO(tpl)
	return &dto, nil
}

func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, req *domain.SaveTemplateRequest) (*domain.EmailTemplateDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrTemplateNotFound)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: template name is required", ErrInvalidInput)
	}
	tpl.Name = name
	tpl.Subject = req.Subject
	tpl.Body = req.Body

	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", mapRepoError(err, ErrTemplateNotFound))
	}
	dto := mapper.ToEmailTemplateDTO(tpl)
	return &dto, nil
}

func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := requireUser(ctx); err != nil {
		return err
	}
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, ErrTemplateNotFound)
	}
	return nil
}

// Analyze reports template tokens that resolve to an empty field for some of the
// selected recipients. It never blocks generation.
func (s *TemplateService) Analyze(ctx context.Context, req *domain.AnalyzeTemplateRequest) ([]domain.MissingFieldWarning, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	contacts, err := s.contactRepo.GetByIDs(ctx, dedupeIDs(req.ContactIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}
	recipients := make([]render.Recipient, len(contacts))
	for i := range contacts {
		recipients[i] = render.RecipientFromContact(&contacts[i])
	}
	return render.Analyze(req.Subject, req.Body, recipients), nil
}
