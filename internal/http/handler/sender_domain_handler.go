package handler

import (
	"net/http"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

// SenderDomainHandler manages the caller's sending domain at the mail provider
type SenderDomainHandler struct {
	senderDomainService *service.SenderDomainService
	logger              *zap.Logger
}

// NewSenderDomainHandler creates a new SenderDomainHandler
func NewSenderDomainHandler(senderDomainService *service.SenderDomainService, logger *zap.Logger) *SenderDomainHandler {
	return &SenderDomainHandler{
		senderDomainService: senderDomainService,
		logger:              logger,
	}
}

// Get godoc
// @Summary Get sender domain
// @Description Returns the registered domain with its DNS records and verification status
// @Tags SenderDomain
// @Produce json
// @Success 200 {object} domain.SenderDomainDTO
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /sender-domain [get]
func (h *SenderDomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.senderDomainService.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "get sender domain")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Add godoc
// @Summary Register sender domain
// @Tags SenderDomain
// @Accept json
// @Produce json
// @Param request body domain.AddSenderDomainRequest true "Domain"
// @Success 201 {object} domain.SenderDomainDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /sender-domain [post]
func (h *SenderDomainHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.AddSenderDomainRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.senderDomainService.Add(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "add sender domain")
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// Verify godoc
// @Summary Verify sender domain
// @Tags SenderDomain
// @Produce json
// @Success 200 {object} domain.SenderDomainDTO
// @Failure 404 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /sender-domain/verify [post]
func (h *SenderDomainHandler) Verify(w http.ResponseWriter, r *http.Request) {
	result, err := h.senderDomainService.Verify(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "verify sender domain")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Remove godoc
// @Summary Remove sender domain
// @Tags SenderDomain
// @Success 204
// @Failure 404 {object} domain.APIError
// @Failure 502 {object} domain.APIError
// @Security BearerAuth
// @Router /sender-domain [delete]
func (h *SenderDomainHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.senderDomainService.Remove(r.Context()); err != nil {
		handleServiceError(w, h.logger, err, "remove sender domain")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
