package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	contactService *service.ContactService
	maxUploadMB    int64
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *service.ContactService, maxUploadMB int64, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		maxUploadMB:    maxUploadMB,
		logger:         logger,
	}
}

func parseContactFilter(r *http.Request) (domain.ContactFilter, error) {
	q := r.URL.Query()
	filter := domain.ContactFilter{
		Search: q.Get("search"),
		SortBy: domain.ContactSort(q.Get("sortBy")),
	}

	if groupID := q.Get("groupId"); groupID != "" {
		id, err := uuid.Parse(groupID)
		if err != nil {
			return filter, fmt.Errorf("invalid groupId: must be a valid UUID")
		}
		filter.GroupID = &id
	}

	if status := q.Get("status"); status != "" {
		st := domain.ContactStatus(status)
		if st != domain.ContactStatusImported && st != domain.ContactStatusSkipped {
			return filter, fmt.Errorf("invalid status: must be one of imported, skipped")
		}
		filter.Status = st
	}

	switch filter.SortBy {
	case "", domain.ContactSortCreatedDesc, domain.ContactSortCreatedAsc,
		domain.ContactSortCompanyAsc, domain.ContactSortCompanyDesc, domain.ContactSortEmailAsc:
	default:
		return filter, fmt.Errorf("invalid sortBy: %s", filter.SortBy)
	}

	return filter, nil
}

// List godoc
// @Summary List contacts
// @Description List the caller's contacts with optional search, group and status filters
// @Tags Contacts
// @Produce json
// @Param search query string false "Search company, email, name or domain"
// @Param groupId query string false "Only contacts in this group"
// @Param status query string false "Filter by status" Enums(imported, skipped)
// @Param sortBy query string false "Sort option" Enums(created_desc, created_asc, company_asc, company_desc, email_asc)
// @Success 200 {array} domain.ContactDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseContactFilter(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	contacts, err := h.contactService.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.logger, err, "list contacts")
		return
	}

	respondJSON(w, http.StatusOK, contacts)
}

// Create godoc
// @Summary Add contacts manually
// @Description Import contact rows entered in the UI. Rows without a company or a valid email are skipped.
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body domain.CreateContactsRequest true "Contact rows"
// @Success 201 {object} domain.ImportResult
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.contactService.ImportRows(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "import contacts")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// Import godoc
// @Summary Import contacts from a file
// @Description Upload a CSV or XLSX file. Headers are matched case-insensitively.
// @Tags Contacts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Success 201 {object} domain.ImportResult
// @Failure 400 {object} domain.APIError
// @Failure 413 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts/import [post]
func (h *ContactHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid file upload: file field is required")
		return
	}
	defer file.Close()

	result, err := h.contactService.ImportFile(r.Context(), header.Filename, file)
	if err != nil {
		handleServiceError(w, h.logger, err, "import contacts")
		return
	}

	h.logger.Info("contacts imported",
		zap.String("filename", header.Filename),
		zap.Int("accepted", result.Accepted),
		zap.Int("skipped", result.Skipped))

	respondJSON(w, http.StatusCreated, result)
}

// Export godoc
// @Summary Export contacts
// @Description Download the filtered contacts as an XLSX workbook
// @Tags Contacts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Search term"
// @Param groupId query string false "Only contacts in this group"
// @Param status query string false "Filter by status" Enums(imported, skipped)
// @Success 200 {file} file
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts/export [get]
func (h *ContactHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseContactFilter(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.contactService.Export(r.Context(), filter, &buf); err != nil {
		handleServiceError(w, h.logger, err, "export contacts")
		return
	}

	filename := "contacts_" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// FixColumns godoc
// @Summary Repair shifted columns
// @Description Moves emails, domains and names that were imported into the wrong column back into place
// @Tags Contacts
// @Produce json
// @Success 200 {object} domain.FixColumnsResult
// @Security BearerAuth
// @Router /contacts/fix-columns [post]
func (h *ContactHandler) FixColumns(w http.ResponseWriter, r *http.Request) {
	result, err := h.contactService.FixColumns(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "fix contact columns")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Enrich godoc
// @Summary Enrich contacts
// @Description Look up company facts for each contact. Costs one credit per contact not yet enriched this month.
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body domain.ContactIDsRequest true "Contact IDs"
// @Success 200 {object} domain.BatchResult
// @Failure 400 {object} domain.APIError
// @Failure 402 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts/enrich [post]
func (h *ContactHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactIDsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.contactService.Enrich(r.Context(), req.ContactIDs)
	if err != nil {
		handleServiceError(w, h.logger, err, "enrich contacts")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// DeleteMany godoc
// @Summary Delete contacts
// @Description Delete several contacts at once. Unknown ids are ignored.
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body domain.ContactIDsRequest true "Contact IDs"
// @Success 200 {object} map[string]int
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts/delete [post]
func (h *ContactHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactIDsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deleted, err := h.contactService.DeleteMany(r.Context(), req.ContactIDs)
	if err != nil {
		handleServiceError(w, h.logger, err, "delete contacts")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

// Update godoc
// @Summary Update contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body domain.UpdateContactRequest true "Fields to change"
// @Success 200 {object} domain.ContactDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts/{id} [patch]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "contact")
	if !ok {
		return
	}

	var req domain.UpdateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.contactService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update contact")
		return
	}

	respondJSON(w, http.StatusOK, contact)
}

// Delete godoc
// @Summary Delete contact
// @Tags Contacts
// @Param id path string true "Contact ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "contact")
	if !ok {
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete contact")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
