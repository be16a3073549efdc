package handler

import (
	"net/http"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

// ProfileHandler serves the caller's profile, plan usage and invoices
type ProfileHandler struct {
	profileService *service.ProfileService
	usageService   *service.UsageService
	invoiceService *service.InvoiceService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	profileService *service.ProfileService,
	usageService *service.UsageService,
	invoiceService *service.InvoiceService,
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		usageService:   usageService,
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.ProfileDTO
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "get profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Updates generation defaults, sender identity and signature. Omitted fields are kept.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body domain.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} domain.ProfileDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.profileService.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// GetUsage godoc
// @Summary Get monthly usage
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.UsageSummaryDTO
// @Security BearerAuth
// @Router /usage [get]
func (h *ProfileHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	summary, err := h.usageService.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "get usage")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ListInvoices godoc
// @Summary List invoices
// @Tags Profile
// @Produce json
// @Success 200 {array} domain.InvoiceDTO
// @Security BearerAuth
// @Router /invoices [get]
func (h *ProfileHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "list invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}
