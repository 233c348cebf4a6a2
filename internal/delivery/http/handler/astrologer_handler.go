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

type AstrologerHandler struct {
	astrologerUsecase usecase.AstrologerUsecase
	validator         *validator.CustomValidator
}

func NewAstrologerHandler(astrologerUsecase usecase.AstrologerUsecase, validator *validator.CustomValidator) *AstrologerHandler {
	return &AstrologerHandler{
		astrologerUsecase: astrologerUsecase,
		validator:         validator,
	}
}

func parseListQuery(r *http.Request) *dto.ListAstrologersQuery {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return &dto.ListAstrologersQuery{
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Page:      page,
		Limit:     limit,
	}
}

// CreateAstrologer handles astrologer profile creation
// @Summary Create an astrologer profile
// @Tags Astrologers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAstrologerRequest true "Create Astrologer Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /astrologers [post]
func (h *AstrologerHandler) CreateAstrologer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAstrologerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	astrologer, err := h.astrologerUsecase.CreateAstrologer(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Astrologer created successfully", astrologer)
}

// UpdateAstrologer handles astrologer profile update
// @Summary Update an astrologer profile
// @Tags Astrologers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Astrologer ID"
// @Param request body dto.UpdateAstrologerRequest true "Update Astrologer Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /astrologers/{id} [put]
func (h *AstrologerHandler) UpdateAstrologer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	var req dto.UpdateAstrologerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	astrologer, err := h.astrologerUsecase.UpdateAstrologer(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Astrologer updated successfully", astrologer)
}

// DeleteAstrologer handles astrologer deletion
// @Summary Delete an astrologer and all owned records
// @Tags Astrologers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Astrologer ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /astrologers/{id} [delete]
func (h *AstrologerHandler) DeleteAstrologer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	if err := h.astrologerUsecase.DeleteAstrologer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Astrologer deleted successfully", nil)
}

// GetAstrologer handles fetching a single astrologer with full details
// @Summary Get an astrologer
// @Tags Astrologers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Astrologer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /astrologers/{id} [get]
func (h *AstrologerHandler) GetAstrologer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	astrologer, err := h.astrologerUsecase.GetAstrologer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Astrologer retrieved successfully", astrologer)
}

// ListAstrologers handles listing astrologers across all statuses
// @Summary List astrologers
// @Tags Astrologers
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name, skill or language"
// @Param sort_by query string false "Sort by experience, price or rating"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /astrologers [get]
func (h *AstrologerHandler) ListAstrologers(w http.ResponseWriter, r *http.Request) {
	result, err := h.astrologerUsecase.ListAstrologers(r.Context(), parseListQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Astrologers retrieved successfully", result)
}

// ListPendingAstrologers lists profiles still in the onboarding pipeline
// @Summary List pending astrologers
// @Tags Astrologers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /astrologers/pending [get]
func (h *AstrologerHandler) ListPendingAstrologers(w http.ResponseWriter, r *http.Request) {
	result, err := h.astrologerUsecase.ListPendingAstrologers(r.Context(), parseListQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Pending astrologers retrieved successfully", result)
}

// ListApprovedAstrologers lists approved profiles
// @Summary List approved astrologers
// @Tags Astrologers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /astrologers/approved [get]
func (h *AstrologerHandler) ListApprovedAstrologers(w http.ResponseWriter, r *http.Request) {
	result, err := h.astrologerUsecase.ListApprovedAstrologers(r.Context(), parseListQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Approved astrologers retrieved successfully", result)
}

// ListRejectedAstrologers lists rejected profiles
// @Summary List rejected astrologers
// @Tags Astrologers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /astrologers/rejected [get]
func (h *AstrologerHandler) ListRejectedAstrologers(w http.ResponseWriter, r *http.Request) {
	result, err := h.astrologerUsecase.ListRejectedAstrologers(r.Context(), parseListQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Rejected astrologers retrieved successfully", result)
}
