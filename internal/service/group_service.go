package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"go.uber.org/zap"
)

type GroupService struct {
	groupRepo   *repository.GroupRepository
	contactRepo *repository.ContactRepository
	logger      *zap.Logger
}

func NewGroupService(groupRepo *repository.GroupRepository, contactRepo *repository.ContactRepository, logger *zap.Logger) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *GroupService) Create(ctx context.Context, req *domain.CreateGroupRequest) (*domain.ContactGroupDTO, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	group := &domain.ContactGroup{Name: name}
	group.UserID = userCtx.UserID
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	dto := mapper.ToContactGroupDTO(group)
	return &dto, nil
}

func (s *GroupService) List(ctx context.Context) ([]domain.ContactGroupDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	dtos := make([]domain.ContactGroupDTO, len(groups))
	for i := range groups {
		dtos[i] = mapper.ToContactGroupDTO(&groups[i])
	}
	return dtos, nil
}

// Delete removes a group together with its memberships; contacts are kept
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := requireUser(ctx); err != nil {
		return err
	}
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, ErrGroupNotFound)
	}
	return nil
}

// ListMemberships returns memberships, optionally restricted to one group
func (s *GroupService) ListMemberships(ctx context.Context, groupID *uuid.UUID) ([]domain.MembershipDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	memberships, err := s.groupRepo.ListMemberships(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	dtos := make([]domain.MembershipDTO, len(memberships))
	for i := range memberships {
		dtos[i] = mapper.ToMembershipDTO(&memberships[i])
	}
	return dtos, nil
}

// AddContacts adds contacts to a group. Pairs that already exist are left as they are,
// and ids that are not the caller's contacts are ignored. Returns the number of
// contacts considered.
func (s *GroupService) AddContacts(ctx context.Context, groupID uuid.UUID, contactIDs []uuid.UUID) (int, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return 0, mapRepoError(err, ErrGroupNotFound)
	}

	contacts, err := s.contactRepo.GetByIDs(ctx, dedupeIDs(contactIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to load contacts: %w", err)
	}

	memberships := make([]domain.ContactGroupMembership, len(contacts))
	for i, c := range contacts {
		memberships[i] = domain.ContactGroupMembership{
			UserID:    userCtx.UserID,
			ContactID: c.ID,
			GroupID:   groupID,
		}
	}
	if err := s.groupRepo.AddMemberships(ctx, memberships); err != nil {
		return 0, fmt.Errorf("failed to add contacts to group: %w", err)
	}
	return len(memberships), nil
}

// RemoveContact removes one contact from a group
func (s *GroupService) RemoveContact(ctx context.Context, groupID, contactID uuid.UUID) error {
	if _, err := requireUser(ctx); err != nil {
		return err
	}
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return mapRepoError(err, ErrGroupNotFound)
	}
	if err := s.groupRepo.RemoveMembership(ctx, groupID, contactID); err != nil {
		return fmt.Errorf("failed to remove contact from group: %w", err)
	}
	return nil
}
