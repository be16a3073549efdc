package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"gorm.io/gorm"
)

// contactSortColumns maps sort keys to ORDER BY clauses
var contactSortColumns = map[domain.ContactSort]SortConfig{
	domain.ContactSortCreatedDesc: {Field: "created", Order: SortOrderDesc},
	domain.ContactSortCreatedAsc:  {Field: "created", Order: SortOrderAsc},
	domain.ContactSortCompanyAsc:  {Field: "company", Order: SortOrderAsc},
	domain.ContactSortCompanyDesc: {Field: "company", Order: SortOrderDesc},
	domain.ContactSortEmailAsc:    {Field: "email", Order: SortOrderAsc},
}

var contactFieldMap = map[string]string{
	"created": "leads.created_at",
	"company": "LOWER(leads.company)",
	"email":   "LOWER(leads.contact_email)",
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// CreateBatch inserts contacts in one transaction
func (r *ContactRepository) CreateBatch(ctx context.Context, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&contacts, 200).Error
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	var contact domain.Contact
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByIDs returns the caller's contacts among ids, in input order. Unknown ids are dropped.
func (r *ContactRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Contact, error) {
	if len(ids) == 0 {
		return []domain.Contact{}, nil
	}
	var found []domain.Contact
	if err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx)).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Contact, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	ordered := make([]domain.Contact, 0, len(found))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok && !seen[id] {
			ordered = append(ordered, c)
			seen[id] = true
		}
	}
	return ordered, nil
}

// List returns the caller's contacts, newest first unless the filter says otherwise
func (r *ContactRepository) List(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error) {
	query := ApplyOwnerFilterWithColumn(ctx, r.db.WithContext(ctx).Model(&domain.Contact{}), "leads.user_id")

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			`LOWER(leads.company) LIKE ? ESCAPE '\' OR LOWER(leads.contact_email) LIKE ? ESCAPE '\' OR LOWER(leads.contact_name) LIKE ? ESCAPE '\' OR LOWER(leads.domain) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("leads.status = ?", filter.Status)
	}
	if filter.GroupID != nil {
		query = query.Where("leads.id IN (?)",
			r.db.Model(&domain.ContactGroupMembership{}).Select("contact_id").Where("group_id = ?", *filter.GroupID),
		)
	}

	sort, ok := contactSortColumns[filter.SortBy]
	if !ok {
		sort = contactSortColumns[domain.ContactSortCreatedDesc]
	}
	order := BuildOrderClause(sort, contactFieldMap, "leads.created_at")

	var contacts []domain.Contact
	err := query.Order(order).Order("leads.id").Find(&contacts).Error
	return contacts, err
}

// Update saves all fields of an owned contact
func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	return saveOwned(ctx, r.db.WithContext(ctx), contact)
}

// UpdateMany saves several contacts in one transaction
func (r *ContactRepository) UpdateMany(ctx context.Context, contacts []domain.Contact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range contacts {
			if err := saveOwned(ctx, tx, &contacts[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes contacts and their group memberships, returning how many contacts were removed
func (r *ContactRepository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ApplyOwnerFilter(ctx, tx).
			Where("contact_id IN ?", ids).
			Delete(&domain.ContactGroupMembership{}).Error; err != nil {
			return err
		}
		result := ApplyOwnerFilter(ctx, tx).Where("id IN ?", ids).Delete(&domain.Contact{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

// CountEnrichedSince counts the caller's contacts enriched at or after since
func (r *ContactRepository) CountEnrichedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := ApplyOwnerFilter(ctx, r.db.WithContext(ctx).Model(&domain.Contact{})).
		Where("enriched_at >= ?", since).
		Count(&count).Error
	return count, err
}
