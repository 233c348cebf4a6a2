package usecase

import (
	"context"
	"time"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/converter"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/domain/repository"
	"astro-admin-api/internal/guard"
	"astro-admin-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApprovalUsecase owns every approval status transition. Transitions are
// deliberately permissive: approve and scheduleInterview apply from any
// current status, matching the operational need to re-run steps.
type ApprovalUsecase interface {
	ScheduleInterview(ctx context.Context, astrologerID uuid.UUID, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error)
	AddDocument(ctx context.Context, astrologerID uuid.UUID, req *dto.AddDocumentRequest) (*dto.DocumentResponse, error)
	VerifyDocument(ctx context.Context, astrologerID uuid.UUID, documentID int, req *dto.VerifyDocumentRequest) (*dto.DocumentResponse, error)
	ApproveAstrologer(ctx context.Context, astrologerID uuid.UUID, req *dto.ApproveAstrologerRequest) (*dto.AstrologerResponse, error)
	RejectAstrologer(ctx context.Context, astrologerID uuid.UUID, req *dto.RejectAstrologerRequest) (*dto.AstrologerResponse, error)
}

type approvalUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	astrologerRepo repository.AstrologerRepository
	interviewRepo  repository.InterviewRepository
	documentRepo   repository.AstrologerDocumentRepository
	rejectionRepo  repository.RejectionHistoryRepository
	auditService   service.AuditService
}

func NewApprovalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	astrologerRepo repository.AstrologerRepository,
	interviewRepo repository.InterviewRepository,
	documentRepo repository.AstrologerDocumentRepository,
	rejectionRepo repository.RejectionHistoryRepository,
	auditService service.AuditService,
) ApprovalUsecase {
	return &approvalUsecase{
		db:             db,
		log:            log,
		astrologerRepo: astrologerRepo,
		interviewRepo:  interviewRepo,
		documentRepo:   documentRepo,
		rejectionRepo:  rejectionRepo,
		auditService:   auditService,
	}
}

func (u *approvalUsecase) ScheduleInterview(ctx context.Context, astrologerID uuid.UUID, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error) {
	actor, err := authorize(ctx, guard.OpScheduleInterview, u.auditService)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, apperr.Validation("Invalid scheduled_at format, expected RFC3339")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	astrologer, err := u.astrologerRepo.FindByID(tx, astrologerID)
	if err != nil {
		u.log.Warnf("Failed to find astrologer: %+v", err)
		return nil, err
	}
	if astrologer == nil {
		return nil, apperr.NotFound("Astrologer not found")
	}

	existing, err := u.interviewRepo.FindByAstrologerAndRound(tx, astrologerID, req.RoundNumber)
	if err != nil {
		u.log.Warnf("Failed to find interview round: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("Interview round already scheduled")
	}

	interview := &entity.Interview{
		AstrologerID:    astrologerID,
		RoundNumber:     req.RoundNumber,
		InterviewerName: req.InterviewerName,
		ScheduledAt:     scheduledAt,
		Status:          entity.InterviewStatusScheduled,
	}

	if err := u.interviewRepo.Create(tx, interview); err != nil {
		if isDuplicateKeyError(err, "idx_astrologer_round") {
			return nil, apperr.AlreadyExists("Interview round already scheduled")
		}
		u.log.Warnf("Failed to create interview: %+v", err)
		return nil, err
	}

	astrologer.ApprovalStatus = entity.ApprovalStatusInterview
	if err := u.astrologerRepo.Update(tx, astrologer); err != nil {
		u.log.Warnf("Failed to update astrologer status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionInterviewSchedule, entity.JSON{
		"astrologer_id": astrologerID.String(),
		"round_number":  req.RoundNumber,
	})

	return converter.InterviewToResponse(interview), nil
}

func (u *approvalUsecase) AddDocument(ctx context.Context, astrologerID uuid.UUID, req *dto.AddDocumentRequest) (*dto.DocumentResponse, error) {
	actor, err := authorize(ctx, guard.OpAddAstrologerDocument, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	astrologer, err := u.astrologerRepo.FindByID(tx, astrologerID)
	if err != nil {
		u.log.Warnf("Failed to find astrologer: %+v", err)
		return nil, err
	}
	if astrologer == nil {
		return nil, apperr.NotFound("Astrologer not found")
	}

	existing, err := u.documentRepo.FindByAstrologerAndType(tx, astrologerID, req.DocumentType)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("Document already uploaded for this type")
	}

	document := &entity.AstrologerDocument{
		AstrologerID: astrologerID,
		DocumentType: req.DocumentType,
		DocumentURL:  req.DocumentURL,
		Status:       entity.DocumentStatusPending,
	}

	if err := u.documentRepo.Create(tx, document); err != nil {
		if isDuplicateKeyError(err, "idx_astrologer_document_type") {
			return nil, apperr.AlreadyExists("Document already uploaded for this type")
		}
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	astrologer.ApprovalStatus = entity.ApprovalStatusDocumentVerification
	if err := u.astrologerRepo.Update(tx, astrologer); err != nil {
		u.log.Warnf("Failed to update astrologer status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionDocumentAdd, entity.JSON{
		"astrologer_id": astrologerID.String(),
		"document_type": req.DocumentType,
	})

	return converter.DocumentToResponse(document), nil
}

func (u *approvalUsecase) VerifyDocument(ctx context.Context, astrologerID uuid.UUID, documentID int, req *dto.VerifyDocumentRequest) (*dto.DocumentResponse, error) {
	actor, err := authorize(ctx, guard.OpVerifyDocument, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	document, err := u.documentRepo.FindByID(tx, documentID)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if document == nil || document.AstrologerID != astrologerID {
		return nil, apperr.NotFound("Document not found")
	}

	now := time.Now()
	document.Status = entity.DocumentStatus(req.Status)
	document.Remarks = req.Remarks
	document.VerifiedBy = &actor.AdminID
	document.VerifiedAt = &now

	if err := u.documentRepo.Update(tx, document); err != nil {
		u.log.Warnf("Failed to update document: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionDocumentVerify, entity.JSON{
		"astrologer_id": astrologerID.String(),
		"document_id":   documentID,
		"status":        req.Status,
	})

	return converter.DocumentToResponse(document), nil
}

// ApproveAstrologer applies from any current status, including an already
// approved or rejected profile.
func (u *approvalUsecase) ApproveAstrologer(ctx context.Context, astrologerID uuid.UUID, req *dto.ApproveAstrologerRequest) (*dto.AstrologerResponse, error) {
	actor, err := authorize(ctx, guard.OpApproveAstrologer, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	astrologer, err := u.astrologerRepo.FindByID(tx, astrologerID)
	if err != nil {
		u.log.Warnf("Failed to find astrologer: %+v", err)
		return nil, err
	}
	if astrologer == nil {
		return nil, apperr.NotFound("Astrologer not found")
	}

	astrologer.ApprovalStatus = entity.ApprovalStatusApproved
	astrologer.ApprovedByID = &actor.AdminID
	if req.Remarks != "" {
		astrologer.AdminRemarks = req.Remarks
	}

	if err := u.astrologerRepo.Update(tx, astrologer); err != nil {
		u.log.Warnf("Failed to approve astrologer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAstrologerApprove, entity.JSON{
		"astrologer_id": astrologerID.String(),
	})

	return converter.AstrologerToResponse(astrologer), nil
}

func (u *approvalUsecase) RejectAstrologer(ctx context.Context, astrologerID uuid.UUID, req *dto.RejectAstrologerRequest) (*dto.AstrologerResponse, error) {
	actor, err := authorize(ctx, guard.OpRejectAstrologer, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	astrologer, err := u.astrologerRepo.FindByID(tx, astrologerID)
	if err != nil {
		u.log.Warnf("Failed to find astrologer: %+v", err)
		return nil, err
	}
	if astrologer == nil {
		return nil, apperr.NotFound("Astrologer not found")
	}

	history := &entity.AstrologerRejectionHistory{
		AstrologerID: astrologerID,
		Stage:        entity.RejectionStage(req.Stage),
		Reason:       req.Reason,
		RejectedBy:   actor.AdminID,
	}

	if err := u.rejectionRepo.Create(tx, history); err != nil {
		u.log.Warnf("Failed to create rejection history: %+v", err)
		return nil, err
	}

	astrologer.ApprovalStatus = entity.ApprovalStatusRejected
	astrologer.AdminRemarks = req.Reason

	if err := u.astrologerRepo.Update(tx, astrologer); err != nil {
		u.log.Warnf("Failed to reject astrologer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAstrologerReject, entity.JSON{
		"astrologer_id": astrologerID.String(),
		"stage":         req.Stage,
		"reason":        req.Reason,
	})

	return converter.AstrologerToResponse(astrologer), nil
}
