package handler

import (
	"net/http"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

// DraftHandler handles HTTP requests for campaign drafts
type DraftHandler struct {
	draftService *service.DraftService
	logger       *zap.Logger
}

// NewDraftHandler creates a new DraftHandler
func NewDraftHandler(draftService *service.DraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		logger:       logger,
	}
}

// List godoc
// @Summary List drafts
// @Tags Drafts
// @Produce json
// @Success 200 {array} domain.CampaignDraftDTO
// @Security BearerAuth
// @Router /drafts [get]
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.draftService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "list drafts")
		return
	}

	respondJSON(w, http.StatusOK, drafts)
}

// Create godoc
// @Summary Create draft
// @Description Creates the durable draft once recipients have been confirmed
// @Tags Drafts
// @Accept json
// @Produce json
// @Param request body domain.CreateDraftRequest true "Draft data"
// @Success 201 {object} domain.CampaignDraftDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /drafts [post]
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	draft, err := h.draftService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create draft")
		return
	}

	respondJSON(w, http.StatusCreated, draft)
}

// Get godoc
// @Summary Get draft
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} domain.CampaignDraftDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "draft")
	if !ok {
		return
	}

	draft, err := h.draftService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "get draft")
		return
	}

	respondJSON(w, http.StatusOK, draft)
}

// Update godoc
// @Summary Autosave draft
// @Description Queues a partial update. Bursts of patches are coalesced and written after a quiet period.
// @Description Pass save=true to write immediately and receive the stored draft.
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param save query bool false "Write synchronously"
// @Param request body domain.UpdateDraftRequest true "Fields to change"
// @Success 200 {object} domain.CampaignDraftDTO
// @Success 202
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /drafts/{id} [patch]
func (h *DraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "draft")
	if !ok {
		return
	}

	var req domain.UpdateDraftRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if r.URL.Query().Get("save") == "true" {
		draft, err := h.draftService.Save(r.Context(), id, &req)
		if err != nil {
			handleServiceError(w, h.logger, err, "save draft")
			return
		}
		respondJSON(w, http.StatusOK, draft)
		return
	}

	if err := h.draftService.Autosave(r.Context(), id, &req); err != nil {
		handleServiceError(w, h.logger, err, "autosave draft")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Delete godoc
// @Summary Discard draft
// @Tags Drafts
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "draft")
	if !ok {
		return
	}

	if err := h.draftService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
