package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

// EmailHandler handles generation, review and sending of outbound emails
type EmailHandler struct {
	generationService *service.GenerationService
	reviewService     *service.ReviewService
	sendService       *service.SendService
	logger            *zap.Logger
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(
	generationService *service.GenerationService,
	reviewService *service.ReviewService,
	sendService *service.SendService,
	logger *zap.Logger,
) *EmailHandler {
	return &EmailHandler{
		generationService: generationService,
		reviewService:     reviewService,
		sendService:       sendService,
		logger:            logger,
	}
}

// Generate godoc
// @Summary Generate emails
// @Description Creates one personalized email per contact. Costs one credit per contact.
// @Description When the model fails for a contact the template text is used unchanged.
// @Tags Emails
// @Accept json
// @Produce json
// @Param request body domain.GenerateEmailsRequest true "Campaign template and recipients"
// @Success 201 {array} domain.OutboundEmailDTO
// @Failure 400 {object} domain.APIError
// @Failure 402 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/generate [post]
func (h *EmailHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateEmailsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	emails, err := h.generationService.Generate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "generate emails")
		return
	}

	respondJSON(w, http.StatusCreated, emails)
}

// List godoc
// @Summary List emails
// @Description Lists the caller's emails grouped by campaign
// @Tags Emails
// @Produce json
// @Success 200 {array} domain.CampaignGroupDTO
// @Security BearerAuth
// @Router /emails [get]
func (h *EmailHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.reviewService.ListGrouped(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "list emails")
		return
	}

	respondJSON(w, http.StatusOK, groups)
}

// Get godoc
// @Summary Get email
// @Tags Emails
// @Produce json
// @Param id path string true "Email ID"
// @Success 200 {object} domain.OutboundEmailDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/{id} [get]
func (h *EmailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "email")
	if !ok {
		return
	}

	email, err := h.reviewService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "get email")
		return
	}

	respondJSON(w, http.StatusOK, email)
}

// Update godoc
// @Summary Edit email
// @Description Edits subject or body. Sent emails cannot be edited.
// @Tags Emails
// @Accept json
// @Produce json
// @Param id path string true "Email ID"
// @Param request body domain.UpdateEmailRequest true "New copy"
// @Success 200 {object} domain.OutboundEmailDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/{id} [patch]
func (h *EmailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "email")
	if !ok {
		return
	}

	var req domain.UpdateEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	email, err := h.reviewService.Edit(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update email")
		return
	}

	respondJSON(w, http.StatusOK, email)
}

// Delete godoc
// @Summary Delete email
// @Tags Emails
// @Param id path string true "Email ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/{id} [delete]
func (h *EmailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "email")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete email")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Approve godoc
// @Summary Approve email
// @Tags Emails
// @Produce json
// @Param id path string true "Email ID"
// @Success 200 {object} domain.OutboundEmailDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/{id}/approve [post]
func (h *EmailHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "email")
	if !ok {
		return
	}

	email, err := h.reviewService.Approve(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "approve email")
		return
	}

	respondJSON(w, http.StatusOK, email)
}

// RequestReview godoc
// @Summary Flag email for review
// @Tags Emails
// @Produce json
// @Param id path string true "Email ID"
// @Success 200 {object} domain.OutboundEmailDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/{id}/request-review [post]
func (h *EmailHandler) RequestReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "email")
	if !ok {
		return
	}

	email, err := h.reviewService.RequestReview(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "request review")
		return
	}

	respondJSON(w, http.StatusOK, email)
}

// ApproveAll godoc
// @Summary Approve all pending emails
// @Description Approves every email of the caller that is in draft or needs_review
// @Tags Emails
// @Produce json
// @Success 200 {object} domain.ApproveAllResult
// @Security BearerAuth
// @Router /emails/approve-all [post]
func (h *EmailHandler) ApproveAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.ApproveAll(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "approve emails")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Send godoc
// @Summary Send email
// @Description Sends an approved email. With testRecipient the copy goes to that address only
// @Description and the email keeps its status.
// @Tags Emails
// @Accept json
// @Produce json
// @Param id path string true "Email ID"
// @Param request body domain.SendEmailRequest false "Optional test recipient"
// @Success 200 {object} domain.OutboundEmailDTO
// @Failure 400 {object} domain.APIError
// @Failure 402 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/{id}/send [post]
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "email")
	if !ok {
		return
	}

	// An empty body means a real send
	var req domain.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	email, err := h.sendService.Send(r.Context(), id, req.TestRecipient)
	if err != nil {
		handleServiceError(w, h.logger, err, "send email")
		return
	}

	respondJSON(w, http.StatusOK, email)
}

// SendApproved godoc
// @Summary Send all approved emails
// @Description Sends every approved email. Items fail independently.
// @Tags Emails
// @Produce json
// @Success 200 {object} domain.BatchResult
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /emails/send-approved [post]
func (h *EmailHandler) SendApproved(w http.ResponseWriter, r *http.Request) {
	result, err := h.sendService.SendAllApproved(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "send approved emails")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
