package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/usecase"
	"astro-admin-api/pkg/response"
	"astro-admin-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PermissionHandler struct {
	permissionUsecase usecase.PermissionUsecase
	validator         *validator.CustomValidator
}

func NewPermissionHandler(permissionUsecase usecase.PermissionUsecase, validator *validator.CustomValidator) *PermissionHandler {
	return &PermissionHandler{
		permissionUsecase: permissionUsecase,
		validator:         validator,
	}
}

// CreatePermission handles permission creation
// @Summary Create a permission
// @Tags Permissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePermissionRequest true "Create Permission Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /permissions [post]
func (h *PermissionHandler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	permission, err := h.permissionUsecase.CreatePermission(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Permission created successfully", permission)
}

// UpdatePermission handles permission update
// @Summary Update a permission
// @Tags Permissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Permission ID"
// @Param request body dto.UpdatePermissionRequest true "Update Permission Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /permissions/{id} [put]
func (h *PermissionHandler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid permission ID", nil)
		return
	}

	var req dto.UpdatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	permission, err := h.permissionUsecase.UpdatePermission(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Permission updated successfully", permission)
}

// DeletePermission handles permission deletion
// @Summary Delete a permission
// @Tags Permissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Permission ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid permission ID", nil)
		return
	}

	if err := h.permissionUsecase.DeletePermission(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Permission deleted successfully", nil)
}

// ListPermissions handles listing all permissions
// @Summary List permissions
// @Tags Permissions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /permissions [get]
func (h *PermissionHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.permissionUsecase.ListPermissions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Permissions retrieved successfully", permissions)
}
