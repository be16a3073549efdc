package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *domain.ContactGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactGroup, error) {
	var group domain.ContactGroup
	if err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindByName returns the oldest group with the given name, compared case-insensitively
func (r *GroupRepository) FindByName(ctx context.Context, name string) (*domain.ContactGroup, error) {
	var group domain.ContactGroup
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("created_at ASC").
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) List(ctx context.Context) ([]domain.ContactGroup, error) {
	var groups []domain.ContactGroup
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Order("name ASC").Order("created_at ASC").Find(&groups).Error
	return groups, err
}

// Delete removes a group and its memberships
func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ApplyOwnerFilter(ctx, tx).Where("group_id = ?", id).Delete(&domain.ContactGroupMembership{}).Error; err != nil {
			return err
		}
		result := ApplyOwnerFilter(ctx, tx).Where("id = ?", id).Delete(&domain.ContactGroup{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListMemberships returns the caller's memberships, optionally for one group
func (r *GroupRepository) ListMemberships(ctx context.Context, groupID *uuid.UUID) ([]domain.ContactGroupMembership, error) {
	query := ApplyOwnerFilter(ctx, r.db.WithContext(ctx))
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}
	var memberships []domain.ContactGroupMembership
	err := query.Order("created_at ASC").Find(&memberships).Error
	return memberships, err
}

// AddMemberships upserts memberships keyed on (contact_id, group_id); existing pairs are left alone
func (r *GroupRepository) AddMemberships(ctx context.Context, memberships []domain.ContactGroupMembership) error {
	if len(memberships) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contact_id"}, {Name: "group_id"}},
			DoNothing: true,
		}).
		Create(&memberships).Error
}

// RemoveMembership deletes one membership; removing a missing pair is not an error
func (r *GroupRepository) RemoveMembership(ctx context.Context, groupID, contactID uuid.UUID) error {
	return ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).
		Where("group_id = ? AND contact_id = ?", groupID, contactID).
		Delete(&domain.ContactGroupMembership{}).Error
}

// GroupIDsByContact indexes the group ids of the given contacts (all contacts when ids is nil)
func (r *GroupRepository) GroupIDsByContact(ctx context.Context, contactIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	query := ApplyOwnerFilter(ctx, r.db.WithContext(ctx))
	if contactIDs != nil {
		if len(contactIDs) == 0 {
			return map[uuid.UUID][]uuid.UUID{}, nil
		}
		query = query.Where("contact_id IN ?", contactIDs)
	}
	var memberships []domain.ContactGroupMembership
	if err := query.Order("created_at ASC").Find(&memberships).Error; err != nil {
		return nil, err
	}
	index := make(map[uuid.UUID][]uuid.UUID)
	for _, m := range memberships {
		index[m.ContactID] = append(index[m.ContactID], m.GroupID)
	}
	return index, nil
}
