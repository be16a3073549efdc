package handler

import (
	"net/http"

	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

// TemplateHandler handles HTTP requests for saved email templates
type TemplateHandler struct {
	templateService *service.TemplateService
	logger          *zap.Logger
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templateService *service.TemplateService, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		logger:          logger,
	}
}

// List godoc
// @Summary List templates
// @Tags Templates
// @Produce json
// @Success 200 {array} domain.EmailTemplateDTO
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "list templates")
		return
	}

	respondJSON(w, http.StatusOK, templates)
}

// Create godoc
// @Summary Save template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body domain.SaveTemplateRequest true "Template"
// @Success 201 {object} domain.EmailTemplateDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tmpl, err := h.templateService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create template")
		return
	}

	respondJSON(w, http.StatusCreated, tmpl)
}

// Update godoc
// @Summary Replace template
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body domain.SaveTemplateRequest true "Template"
// @Success 200 {object} domain.EmailTemplateDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "template")
	if !ok {
		return
	}

	var req domain.SaveTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tmpl, err := h.templateService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "update template")
		return
	}

	respondJSON(w, http.StatusOK, tmpl)
}

// Delete godoc
// @Summary Delete template
// @Tags Templates
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "template")
	if !ok {
		return
	}

	if err := h.templateService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Analyze godoc
// @Summary Check template tokens
// @Description Reports bracket tokens that resolve to an empty field for some of the given recipients
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeTemplateRequest true "Template and recipients"
// @Success 200 {array} domain.MissingFieldWarning
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /templates/analyze [post]
func (h *TemplateHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	warnings, err := h.templateService.Analyze(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "analyze template")
		return
	}

	respondJSON(w, http.StatusOK, warnings)
}
