package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/usecase"
	"astro-admin-api/pkg/response"
	"astro-admin-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// CreateAdmin handles admin account creation
// @Summary Create an admin account
// @Tags Admins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admins [post]
func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.adminUsecase.CreateAdmin(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Admin created successfully", admin)
}

// UpdateAdmin handles admin account update
// @Summary Update an admin account
// @Tags Admins
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Update Admin Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{id} [put]
func (h *AdminHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	var req dto.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.adminUsecase.UpdateAdmin(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admin updated successfully", admin)
}

// DeleteAdmin handles admin account deletion
// @Summary Delete an admin account
// @Tags Admins
// @Security BearerAuth
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admins/{id} [delete]
func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteAdmin(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admin deleted successfully", nil)
}

// ListAdmins handles paginated admin listing
// @Summary List admin accounts
// @Tags Admins
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /admins [get]
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	admins, err := h.adminUsecase.ListAdmins(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admins retrieved successfully", admins)
}
