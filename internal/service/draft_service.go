package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/draft"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type draftKey struct {
	userID  uuid.UUID
	draftID uuid.UUID
}

type pendingPatch struct {
	user  auth.UserContext
	patch domain.UpdateDraftRequest
}

// DraftService persists campaign drafts. Autosave patches are coalesced per draft
// and written once the quiet period has passed without further edits.
type DraftService struct {
	draftRepo *repository.DraftRepository
	autosave  *draft.Debouncer[draftKey, pendingPatch]
	logger    *zap.Logger
}

func NewDraftService(draftRepo *repository.DraftRepository, quietPeriod time.Duration, logger *zap.Logger) *DraftService {
	s := &DraftService{draftRepo: draftRepo, logger: logger}
	s.autosave = draft.NewDebouncer[draftKey, pendingPatch](quietPeriod,
		func(prev, next pendingPatch) pendingPatch {
			prev.patch.Merge(&next.patch)
			return prev
		},
		s.flushAutosave,
	)
	return s
}

func (s *DraftService) flushAutosave(key draftKey, p pendingPatch) {
	user := p.user
	ctx := auth.WithUserContext(context.Background(), &user)
	if _, err := s.apply(ctx, key.draftID, &p.patch); err != nil {
		s.logger.Warn("Draft autosave failed",
			zap.String("user_id", key.userID.String()),
			zap.String("draft_id", key.draftID.String()),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("Draft autosaved", zap.String("draft_id", key.draftID.String()))
}

// Create makes the durable record of a campaign. It needs a name and at least one recipient.
func (s *DraftService) Create(ctx context.Context, req *domain.CreateDraftRequest) (*domain.CampaignDraftDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: campaign name is required", ErrInvalidInput)
	}
	ids := dedupeIDs(req.ContactIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one recipient is required", ErrInvalidInput)
	}
	if req.Tone != "" && !req.Tone.IsValid() {
		return nil, fmt.Errorf("%w: unknown tone %q", ErrInvalidInput, req.Tone)
	}
	if req.Goal != "" && !req.Goal.IsValid() {
		return nil, fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, req.Goal)
	}

	d := &domain.CampaignDraft{
		Name:            name,
		ContactIDs:      datatypes.NewJSONSlice(ids),
		Tone:            req.Tone,
		Goal:            req.Goal,
		Language:        strings.TrimSpace(req.Language),
		TemplateSubject: req.TemplateSubject,
		TemplateBody:    req.TemplateBody,
	}
	d.UserID = userCtx.UserID
	if err := s.draftRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}

	dto := mapper.ToCampaignDraftDTO(d)
	return &dto, nil
}

func validateDraftPatch(patch *domain.UpdateDraftRequest) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: campaign name cannot be blank", ErrInvalidInput)
	}
	if patch.Tone != nil && !patch.Tone.IsValid() {
		return fmt.Errorf("%w: unknown tone %q", ErrInvalidInput, *patch.Tone)
	}
	if patch.Goal != nil && !patch.Goal.IsValid() {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, *patch.Goal)
	}
	return nil
}

// Autosave schedules a patch. Bursts of patches to one draft end in one write.
func (s *DraftService) Autosave(ctx context.Context, id uuid.UUID, patch *domain.UpdateDraftRequest) error {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return err
	}
	if err := validateDraftPatch(patch); err != nil {
		return err
	}
	if _, err := s.draftRepo.GetByID(ctx, id); err != nil {
		return mapRepoError(err, ErrDraftNotFound)
	}

	s.autosave.Schedule(draftKey{userID: userCtx.UserID, draftID: id}, pendingPatch{user: *userCtx, patch: *patch})
	return nil
}

// Save writes a patch immediately, dropping nothing that was pending for the draft
func (s *DraftService) Save(ctx context.Context, id uuid.UUID, patch *domain.UpdateDraftRequest) (*domain.CampaignDraftDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateDraftPatch(patch); err != nil {
		return nil, err
	}
	s.autosave.Flush(draftKey{userID: userCtx.UserID, draftID: id})

	d, err := s.apply(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToCampaignDraftDTO(d)
	return &dto, nil
}

func (s *DraftService) apply(ctx context.Context, id uuid.UUID, patch *domain.UpdateDraftRequest) (*domain.CampaignDraft, error) {
	d, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrDraftNotFound)
	}

	if patch.Name != nil {
		d.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ContactIDs != nil {
		d.ContactIDs = datatypes.NewJSONSlice(dedupeIDs(patch.ContactIDs))
	}
	if patch.Tone != nil {
		d.Tone = *patch.Tone
	}
	if patch.Goal != nil {
		d.Goal = *patch.Goal
	}
	if patch.Language != nil {
		d.Language = strings.TrimSpace(*patch.Language)
	}
	if patch.TemplateSubject != nil {
		d.TemplateSubject = *patch.TemplateSubject
	}
	if patch.TemplateBody != nil {
		d.TemplateBody = *patch.TemplateBody
	}

	if err := s.draftRepo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", mapRepoError(err, ErrDraftNotFound))
	}
	return d, nil
}

// Get returns a draft, writing any pending autosave first
func (s *DraftService) Get(ctx context.Context, id uuid.UUID) (*domain.CampaignDraftDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.autosave.Flush(draftKey{userID: userCtx.UserID, draftID: id})

	d, err := s.draftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrDraftNotFound)
	}
	dto := mapper.ToCampaignDraftDTO(d)
	return &dto, nil
}

// List returns the caller's drafts, most recently edited first
func (s *DraftService) List(ctx context.Context) ([]domain.CampaignDraftDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	s.autosave.FlushMatching(func(k draftKey) bool { return k.userID == userCtx.UserID })

	drafts, err := s.draftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	dtos := make([]domain.CampaignDraftDTO, len(drafts))
	for i := range drafts {
		dtos[i] = mapper.ToCampaignDraftDTO(&drafts[i])
	}
	return dtos, nil
}

// Delete removes a draft and drops its pending autosave
func (s *DraftService) Delete(ctx context.Context, id uuid.UUID) error {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return err
	}
	s.autosave.Cancel(draftKey{userID: userCtx.UserID, draftID: id})

	if err := s.draftRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, ErrDraftNotFound)
	}
	return nil
}

// FlushAll writes every pending autosave and stops accepting delayed writes.
// Called on shutdown.
func (s *DraftService) FlushAll() {
	s.autosave.Close()
}

// DraftStore adapts DraftService to draft.Store for one user, so an editor
// embedded in a client process persists through the same rules as the API
type DraftStore struct {
	svc  *DraftService
	user auth.UserContext
}

func NewDraftStore(svc *DraftService, user auth.UserContext) *DraftStore {
	return &DraftStore{svc: svc, user: user}
}

func (d *DraftStore) ctx(parent context.Context) context.Context {
	u := d.user
	return auth.WithUserContext(parent, &u)
}

func (d *DraftStore) Create(ctx context.Context, f draft.Fields) (uuid.UUID, error) {
	dto, err := d.svc.Create(d.ctx(ctx), &domain.CreateDraftRequest{
		Name:            f.Name,
		ContactIDs:      f.ContactIDs,
		Tone:            f.Tone,
		Goal:            f.Goal,
		Language:        f.Language,
		TemplateSubject: f.Subject,
		TemplateBody:    f.Body,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return dto.ID, nil
}

func (d *DraftStore) Save(ctx context.Context, id uuid.UUID, f draft.Fields) error {
	patch := &domain.UpdateDraftRequest{
		Name:            &f.Name,
		ContactIDs:      append([]uuid.UUID{}, f.ContactIDs...),
		Language:        &f.Language,
		TemplateSubject: &f.Subject,
		TemplateBody:    &f.Body,
	}
	if f.Tone != "" {
		patch.Tone = &f.Tone
	}
	if f.Goal != "" {
		patch.Goal = &f.Goal
	}
	_, err := d.svc.Save(d.ctx(ctx), id, patch)
	return err
}

func (d *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return d.svc.Delete(d.ctx(ctx), id)
}
