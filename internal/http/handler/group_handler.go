package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

// GroupHandler handles HTTP requests for contact groups
type GroupHandler struct {
	groupService *service.GroupService
	logger       *zap.Logger
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupService *service.GroupService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		logger:       logger,
	}
}

// List godoc
// @Summary List groups
// @Tags Groups
// @Produce json
// @Success 200 {array} domain.ContactGroupDTO
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "list groups")
		return
	}

	respondJSON(w, http.StatusOK, groups)
}

// Create godoc
// @Summary Create group
// @Tags Groups
// @Accept json
// @Produce json
// @Param request body domain.CreateGroupRequest true "Group data"
// @Success 201 {object} domain.ContactGroupDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGroupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	group, err := h.groupService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "create group")
		return
	}

	respondJSON(w, http.StatusCreated, group)
}

// Delete godoc
// @Summary Delete group
// @Description Deletes the group and its memberships. Contacts are kept.
// @Tags Groups
// @Param id path string true "Group ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "group")
	if !ok {
		return
	}

	if err := h.groupService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "delete group")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListMemberships godoc
// @Summary List group memberships
// @Tags Groups
// @Produce json
// @Param groupId query string false "Only memberships of this group"
// @Success 200 {array} domain.MembershipDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /groups/memberships [get]
func (h *GroupHandler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	var groupID *uuid.UUID
	if raw := r.URL.Query().Get("groupId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid groupId: must be a valid UUID")
			return
		}
		groupID = &id
	}

	memberships, err := h.groupService.ListMemberships(r.Context(), groupID)
	if err != nil {
		handleServiceError(w, h.logger, err, "list memberships")
		return
	}

	respondJSON(w, http.StatusOK, memberships)
}

// AddContacts godoc
// @Summary Add contacts to a group
// @Description Adding a contact that is already a member is a no-op
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body domain.ContactIDsRequest true "Contact IDs"
// @Success 200 {object} map[string]int
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /groups/{id}/contacts [post]
func (h *GroupHandler) AddContacts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "group")
	if !ok {
		return
	}

	var req domain.ContactIDsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	added, err := h.groupService.AddContacts(r.Context(), id, req.ContactIDs)
	if err != nil {
		handleServiceError(w, h.logger, err, "add contacts to group")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"added": added})
}

// RemoveContact godoc
// @Summary Remove a contact from a group
// @Tags Groups
// @Param id path string true "Group ID"
// @Param contactId path string true "Contact ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /groups/{id}/contacts/{contactId} [delete]
func (h *GroupHandler) RemoveContact(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id", "group")
	if !ok {
		return
	}
	contactID, ok := parseIDParam(w, r, "contactId", "contact")
	if !ok {
		return
	}

	if err := h.groupService.RemoveContact(r.Context(), id, contactID); err != nil {
		handleServiceError(w, h.logger, err, "remove contact from group")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
