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

type ApprovalHandler struct {
	approvalUsecase usecase.ApprovalUsecase
	validator       *validator.CustomValidator
}

func NewApprovalHandler(approvalUsecase usecase.ApprovalUsecase, validator *validator.CustomValidator) *ApprovalHandler {
	return &ApprovalHandler{
		approvalUsecase: approvalUsecase,
		validator:       validator,
	}
}

// ScheduleInterview handles interview scheduling
// @Summary Schedule an interview round
// @Tags Approval
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Astrologer ID"
// @Param request body dto.ScheduleInterviewRequest true "Schedule Interview Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /astrologers/{id}/interviews [post]
func (h *ApprovalHandler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	var req dto.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	interview, err := h.approvalUsecase.ScheduleInterview(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Interview scheduled successfully", interview)
}

// AddDocument handles verification document upload
// @Summary Add a verification document
// @Tags Approval
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Astrologer ID"
// @Param request body dto.AddDocumentRequest true "Add Document Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /astrologers/{id}/documents [post]
func (h *ApprovalHandler) AddDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	var req dto.AddDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.approvalUsecase.AddDocument(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Document added successfully", document)
}

// VerifyDocument handles document verification
// @Summary Verify or reject a document
// @Tags Approval
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Astrologer ID"
// @Param documentId path int true "Document ID"
// @Param request body dto.VerifyDocumentRequest true "Verify Document Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /astrologers/{id}/documents/{documentId}/verify [put]
func (h *ApprovalHandler) VerifyDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	documentID, err := strconv.Atoi(vars["documentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	var req dto.VerifyDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.approvalUsecase.VerifyDocument(r.Context(), id, documentID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Document verification updated", document)
}

// ApproveAstrologer handles astrologer approval
// @Summary Approve an astrologer
// @Tags Approval
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Astrologer ID"
// @Param request body dto.ApproveAstrologerRequest false "Approve Astrologer Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /astrologers/{id}/approve [put]
func (h *ApprovalHandler) ApproveAstrologer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	var req dto.ApproveAstrologerRequest
	json.NewDecoder(r.Body).Decode(&req)

	astrologer, err := h.approvalUsecase.ApproveAstrologer(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Astrologer approved successfully", astrologer)
}

// RejectAstrologer handles astrologer rejection
// @Summary Reject an astrologer at a workflow stage
// @Tags Approval
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Astrologer ID"
// @Param request body dto.RejectAstrologerRequest true "Reject Astrologer Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /astrologers/{id}/reject [put]
func (h *ApprovalHandler) RejectAstrologer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid astrologer ID", nil)
		return
	}

	var req dto.RejectAstrologerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	astrologer, err := h.approvalUsecase.RejectAstrologer(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Astrologer rejected", astrologer)
}
