package handler

import (
	"net/http"

	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	profileService *service.ProfileService
	usageService   *service.UsageService
	logger         *zap.Logger
}

func NewAuthHandler(
	profileService *service.ProfileService,
	usageService *service.UsageService,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		profileService: profileService,
		usageService:   usageService,
		logger:         logger,
	}
}

// Me godoc
// @Summary Get current authenticated user
// @Description Returns the caller with their profile and current monthly usage. The profile is created with defaults on first call.
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.AuthUserDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.profileService.Get(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "load profile")
		return
	}

	usage, err := h.usageService.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "load usage")
		return
	}

	respondJSON(w, http.StatusOK, domain.AuthUserDTO{
		ID:      userCtx.UserID.String(),
		Email:   userCtx.Email,
		Role:    userCtx.Role,
		Profile: *profile,
		Usage:   *usage,
	})
}
