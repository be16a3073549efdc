package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/generator"
	"github.com/sendsafe/sendsafe-api/internal/importer"
	"github.com/sendsafe/sendsafe-api/internal/mapper"
	"github.com/sendsafe/sendsafe-api/internal/metrics"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/storage"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ContactService struct {
	contactRepo *repository.ContactRepository
	groupRepo   *repository.GroupRepository
	usage       *UsageService
	enricher    generator.Enricher
	archive     storage.Storage
	logger      *zap.Logger
	now         func() time.Time
}

func NewContactService(
	contactRepo *repository.ContactRepository,
	groupRepo *repository.GroupRepository,
	usage *UsageService,
	enricher generator.Enricher,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		groupRepo:   groupRepo,
		usage:       usage,
		enricher:    enricher,
		logger:      logger,
		now:         time.Now,
	}
}

// WithExportArchive keeps a copy of every export in store
func (s *ContactService) WithExportArchive(store storage.Storage) *ContactService {
	s.archive = store
	return s
}

// ImportFile reads a delimited text file or workbook and imports its rows.
// A file that cannot be parsed, or whose header lacks company or email, imports nothing.
func (s *ContactService) ImportFile(ctx context.Context, filename string, r io.Reader) (*domain.ImportResult, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	table, err := importer.ParseFile(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	rows, err := importer.Normalize(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	return s.importRows(ctx, rows)
}

// ImportRows imports manually entered rows
func (s *ContactService) ImportRows(ctx context.Context, req *domain.CreateContactsRequest) (*domain.ImportResult, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	return s.importRows(ctx, req.Rows)
}

func (s *ContactService) importRows(ctx context.Context, rows []domain.ContactRow) (*domain.ImportResult, error) {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Contacts: []domain.ContactDTO{}}
	contacts := make([]domain.Contact, 0, len(rows))
	groupNames := make([]string, 0, len(rows))

	for _, row := range rows {
		email := strings.TrimSpace(row.ContactEmail)
		if email == "" {
			result.Skipped++
			continue
		}
		c := domain.Contact{
			Company:       strings.TrimSpace(row.Company),
			ContactEmail:  email,
			ContactName:   strings.TrimSpace(row.ContactName),
			Domain:        strings.TrimSpace(row.Domain),
			Industry:      strings.TrimSpace(row.Industry),
			EmployeeCount: row.EmployeeCount,
			Comment:       strings.TrimSpace(row.Comment),
			Status:        domain.ContactStatusImported,
		}
		if c.EmployeeCount != nil && *c.EmployeeCount < 0 {
			c.EmployeeCount = nil
		}
		c.ID = uuid.New()
		c.UserID = userCtx.UserID
		contacts = append(contacts, c)
		groupNames = append(groupNames, strings.TrimSpace(row.Group))
	}

	if err := s.contactRepo.CreateBatch(ctx, contacts); err != nil {
		return nil, fmt.Errorf("failed to import contacts: %w", err)
	}
	result.Accepted = len(contacts)

	groupIndex, err := s.assignImportGroups(ctx, userCtx.UserID, contacts, groupNames)
	if err != nil {
		return nil, err
	}

	result.Contacts = mapper.ToContactDTOs(contacts, groupIndex)
	metrics.ContactsImported(result.Accepted, result.Skipped)

	s.logger.Info("Contacts imported",
		zap.String("user_id", userCtx.UserID.String()),
		zap.Int("accepted", result.Accepted),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// assignImportGroups adds imported contacts to the groups named in their rows,
// creating groups that do not exist yet
func (s *ContactService) assignImportGroups(ctx context.Context, userID uuid.UUID, contacts []domain.Contact, names []string) (map[uuid.UUID][]uuid.UUID, error) {
	index := make(map[uuid.UUID][]uuid.UUID)
	resolved := make(map[string]uuid.UUID)
	var memberships []domain.ContactGroupMembership

	for i, name := range names {
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		groupID, ok := resolved[key]
		if !ok {
			group, err := s.groupRepo.FindByName(ctx, name)
			if err != nil {
				if err = mapRepoError(err, nil); err != nil {
					return nil, fmt.Errorf("failed to look up group: %w", err)
				}
				group = &domain.ContactGroup{Name: name}
				group.UserID = userID
				if err := s.groupRepo.Create(ctx, group); err != nil {
					return nil, fmt.Errorf("failed to create group: %w", err)
				}
			}
			groupID = group.ID
			resolved[key] = groupID
		}
		memberships = append(memberships, domain.ContactGroupMembership{
			UserID:    userID,
			ContactID: contacts[i].ID,
			GroupID:   groupID,
		})
		index[contacts[i].ID] = append(index[contacts[i].ID], groupID)
	}

	if err := s.groupRepo.AddMemberships(ctx, memberships); err != nil {
		return nil, fmt.Errorf("failed to add imported contacts to groups: %w", err)
	}
	return index, nil
}

// List returns the caller's contacts with their group ids
func (s *ContactService) List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	contacts, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", mapRepoError(err, ErrNotFound))
	}
	index, err := s.groupRepo.GroupIDsByContact(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return mapper.ToContactDTOs(contacts, index), nil
}

// Update applies a partial patch to one contact
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateContactRequest) (*domain.ContactDTO, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrContactNotFound)
	}

	if req.Company != nil {
		contact.Company = strings.TrimSpace(*req.Company)
	}
	if req.ContactEmail != nil {
		email := strings.TrimSpace(*req.ContactEmail)
		if email == "" {
			return nil, fmt.Errorf("%w: contact email cannot be empty", ErrInvalidInput)
		}
		contact.ContactEmail = email
	}
	if req.ContactName != nil {
		contact.ContactName = strings.TrimSpace(*req.ContactName)
	}
	if req.Domain != nil {
		contact.Domain = strings.TrimSpace(*req.Domain)
	}
	if req.Industry != nil {
		contact.Industry = strings.TrimSpace(*req.Industry)
	}
	if req.EmployeeCount != nil {
		if *req.EmployeeCount < 0 {
			return nil, fmt.Errorf("%w: employee count cannot be negative", ErrInvalidInput)
		}
		contact.EmployeeCount = req.EmployeeCount
	}
	if req.Comment != nil {
		contact.Comment = *req.Comment
	}
	if req.Status != nil {
		contact.Status = *req.Status
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", mapRepoError(err, ErrContactNotFound))
	}

	index, err := s.groupRepo.GroupIDsByContact(ctx, []uuid.UUID{contact.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	dto := mapper.ToContactDTO(contact, index[contact.ID])
	return &dto, nil
}

// Delete removes one contact and its memberships
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := requireUser(ctx); err != nil {
		return err
	}
	n, err := s.contactRepo.Delete(ctx, []uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", mapRepoError(err, ErrContactNotFound))
	}
	if n == 0 {
		return ErrContactNotFound
	}
	return nil
}

// DeleteMany removes the caller's contacts among ids and returns how many were removed
func (s *ContactService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if _, err := requireUser(ctx); err != nil {
		return 0, err
	}
	n, err := s.contactRepo.Delete(ctx, dedupeIDs(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete contacts: %w", mapRepoError(err, ErrContactNotFound))
	}
	return int(n), nil
}

// FixColumns moves misplaced emails and domains into their fields
func (s *ContactService) FixColumns(ctx context.Context) (*domain.FixColumnsResult, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	contacts, err := s.contactRepo.List(ctx, domain.ContactFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	var changed []domain.Contact
	for i := range contacts {
		if importer.FixColumns(&contacts[i]) {
			changed = append(changed, contacts[i])
		}
	}
	if err := s.contactRepo.UpdateMany(ctx, changed); err != nil {
		return nil, fmt.Errorf("failed to save fixed contacts: %w", mapRepoError(err, ErrContactNotFound))
	}

	s.logger.Info("Contact columns fixed", zap.Int("scanned", len(contacts)), zap.Int("fixed", len(changed)))
	return &domain.FixColumnsResult{Scanned: len(contacts), Fixed: len(changed)}, nil
}

// Export writes the filtered contact view as a workbook
func (s *ContactService) Export(ctx context.Context, filter domain.ContactFilter, w io.Writer) error {
	userCtx, err := requireUser(ctx)
	if err != nil {
		return err
	}
	contacts, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}
	index, err := s.groupRepo.GroupIDsByContact(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	names := make(map[uuid.UUID]string, len(groups))
	for _, g := range groups {
		names[g.ID] = g.Name
	}
	rows := make([]importer.ExportRow, len(contacts))
	for i, c := range contacts {
		rows[i] = importer.ExportRow{Contact: c}
		for _, gid := range index[c.ID] {
			if n, ok := names[gid]; ok {
				rows[i].Groups = append(rows[i].Groups, n)
			}
		}
	}

	if s.archive == nil {
		return importer.WriteXLSX(w, rows)
	}

	var buf bytes.Buffer
	if err := importer.WriteXLSX(&buf, rows); err != nil {
		return err
	}
	key := path.Join("exports", userCtx.UserID.String(), s.now().UTC().Format("20060102T150405Z")+".xlsx")
	if _, err := s.archive.Put(ctx, key, xlsxContentType, bytes.NewReader(buf.Bytes())); err != nil {
		s.logger.Warn("Failed to archive export", zap.String("key", key), zap.Error(err))
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Enrich looks up missing company facts for the given contacts. Each contact not
// already enriched this month consumes one credit; the quota is checked up front.
func (s *ContactService) Enrich(ctx context.Context, ids []uuid.UUID) (*domain.BatchResult, error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no contacts selected", ErrInvalidInput)
	}

	contacts, err := s.contactRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	since := MonthStart(s.now())
	billable := 0
	for _, c := range contacts {
		if c.EnrichedAt == nil || c.EnrichedAt.Before(since) {
			billable++
		}
	}
	if billable > 0 {
		if _, err := s.usage.ReserveCredits(ctx, billable); err != nil {
			return nil, err
		}
	}

	result := &domain.BatchResult{Attempted: len(ids), Failed: []domain.BatchFailure{}}
	found := make(map[uuid.UUID]bool, len(contacts))
	for i := range contacts {
		c := &contacts[i]
		found[c.ID] = true
		if err := s.enrichOne(ctx, c); err != nil {
			s.logger.Warn("Contact enrichment failed", zap.String("contact_id", c.ID.String()), zap.Error(err))
			metrics.ContactEnriched(metrics.ResultError)
			result.Failed = append(result.Failed, domain.BatchFailure{ID: c.ID, Error: err.Error()})
			continue
		}
		metrics.ContactEnriched(metrics.ResultSuccess)
		result.Succeeded++
	}
	for _, id := range ids {
		if !found[id] {
			result.Failed = append(result.Failed, domain.BatchFailure{ID: id, Error: ErrContactNotFound.Error()})
		}
	}
	return result, nil
}

func (s *ContactService) enrichOne(ctx context.Context, c *domain.Contact) error {
	facts, err := s.enricher.Enrich(ctx, generator.EnrichRequest{
		Company:      c.Company,
		Domain:       c.Domain,
		ContactEmail: c.ContactEmail,
	})
	if err != nil {
		return err
	}

	if c.Domain == "" && facts.Domain != "" {
		if d, ok := importer.BareDomain(facts.Domain); ok {
			c.Domain = d
		} else {
			c.Domain = facts.Domain
		}
	}
	if c.Industry == "" {
		c.Industry = facts.Industry
	}
	if c.EmployeeCount == nil && facts.EmployeeCount != nil && *facts.EmployeeCount >= 0 {
		c.EmployeeCount = facts.EmployeeCount
	}
	now := s.now().UTC()
	c.EnrichedAt = &now

	if err := s.contactRepo.Update(ctx, c); err != nil {
		if errors.Is(mapRepoError(err, ErrContactNotFound), ErrContactNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to save enrichment: %w", err)
	}
	return nil
}
