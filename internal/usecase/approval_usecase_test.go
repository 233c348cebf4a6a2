package usecase

import (
	"testing"
	"time"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newApprovalUsecase(db *gorm.DB) (ApprovalUsecase, *stubAuditService) {
	audit := &stubAuditService{}
	uc := NewApprovalUsecase(
		db,
		testLogger(),
		repository.NewAstrologerRepository(),
		repository.NewInterviewRepository(),
		repository.NewAstrologerDocumentRepository(),
		repository.NewRejectionHistoryRepository(),
		audit,
	)
	return uc, audit
}

func TestScheduleInterview(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "interview@example.com", entity.ApprovalStatusPending)

	interview, err := uc.ScheduleInterview(actorContext(entity.RoleAdmin), astrologer.ID, &dto.ScheduleInterviewRequest{
		RoundNumber:     1,
		InterviewerName: "Senior Astrologer",
		ScheduledAt:     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("ScheduleInterview returned error: %v", err)
	}
	if interview.Status != string(entity.InterviewStatusScheduled) {
		t.Errorf("expected SCHEDULED interview, got %q", interview.Status)
	}

	var saved entity.Astrologer
	db.First(&saved, "id = ?", astrologer.ID)
	if saved.ApprovalStatus != entity.ApprovalStatusInterview {
		t.Errorf("expected astrologer moved to INTERVIEW, got %q", saved.ApprovalStatus)
	}
	if !audit.hasAction(entity.AuditActionInterviewSchedule) {
		t.Error("expected an interview_schedule audit event")
	}
}

func TestScheduleInterviewDuplicateRound(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "round@example.com", entity.ApprovalStatusPending)

	req := &dto.ScheduleInterviewRequest{
		RoundNumber:     2,
		InterviewerName: "Panel",
		ScheduledAt:     time.Now().Add(time.Hour).Format(time.RFC3339),
	}
	if _, err := uc.ScheduleInterview(actorContext(entity.RoleAdmin), astrologer.ID, req); err != nil {
		t.Fatalf("first schedule returned error: %v", err)
	}
	_, err := uc.ScheduleInterview(actorContext(entity.RoleAdmin), astrologer.ID, req)
	if !apperr.IsKind(err, apperr.KindAlreadyExists) {
		t.Fatalf("expected AlreadyExists for repeated round, got %v", err)
	}
	if err.Error() != "Interview round already scheduled" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestScheduleInterviewBadTimestamp(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "badts@example.com", entity.ApprovalStatusPending)

	_, err := uc.ScheduleInterview(actorContext(entity.RoleAdmin), astrologer.ID, &dto.ScheduleInterviewRequest{
		RoundNumber:     1,
		InterviewerName: "Panel",
		ScheduledAt:     "2026-09-01 10:00",
	})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected Validation error, got %v", err)
	}
}

func TestScheduleInterviewUnknownAstrologer(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)

	_, err := uc.ScheduleInterview(actorContext(entity.RoleAdmin), uuid.New(), &dto.ScheduleInterviewRequest{
		RoundNumber:     1,
		InterviewerName: "Panel",
		ScheduledAt:     time.Now().Format(time.RFC3339),
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAddDocument(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "docs@example.com", entity.ApprovalStatusInterview)

	doc, err := uc.AddDocument(actorContext(entity.RoleAdmin), astrologer.ID, &dto.AddDocumentRequest{
		DocumentType: "AADHAAR",
		DocumentURL:  "https://storage.example.com/docs/aadhaar.pdf",
	})
	if err != nil {
		t.Fatalf("AddDocument returned error: %v", err)
	}
	if doc.Status != string(entity.DocumentStatusPending) {
		t.Errorf("expected new document PENDING, got %q", doc.Status)
	}

	var saved entity.Astrologer
	db.First(&saved, "id = ?", astrologer.ID)
	if saved.ApprovalStatus != entity.ApprovalStatusDocumentVerification {
		t.Errorf("expected astrologer moved to DOCUMENT_VERIFICATION, got %q", saved.ApprovalStatus)
	}
}

func TestAddDocumentDuplicateType(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "dupdoc@example.com", entity.ApprovalStatusInterview)

	req := &dto.AddDocumentRequest{
		DocumentType: "PAN",
		DocumentURL:  "https://storage.example.com/docs/pan.pdf",
	}
	if _, err := uc.AddDocument(actorContext(entity.RoleAdmin), astrologer.ID, req); err != nil {
		t.Fatalf("first upload returned error: %v", err)
	}
	_, err := uc.AddDocument(actorContext(entity.RoleAdmin), astrologer.ID, req)
	if !apperr.IsKind(err, apperr.KindAlreadyExists) {
		t.Fatalf("expected AlreadyExists for repeated type, got %v", err)
	}
	if err.Error() != "Document already uploaded for this type" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestVerifyDocument(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "verify@example.com", entity.ApprovalStatusDocumentVerification)

	doc, err := uc.AddDocument(actorContext(entity.RoleAdmin), astrologer.ID, &dto.AddDocumentRequest{
		DocumentType: "AADHAAR",
		DocumentURL:  "https://storage.example.com/docs/aadhaar.pdf",
	})
	if err != nil {
		t.Fatalf("AddDocument returned error: %v", err)
	}

	verified, err := uc.VerifyDocument(actorContext(entity.RoleAdmin), astrologer.ID, doc.ID, &dto.VerifyDocumentRequest{
		Status:  string(entity.DocumentStatusVerified),
		Remarks: "Matches the profile",
	})
	if err != nil {
		t.Fatalf("VerifyDocument returned error: %v", err)
	}
	if verified.Status != string(entity.DocumentStatusVerified) {
		t.Errorf("expected VERIFIED, got %q", verified.Status)
	}
	if verified.VerifiedBy == nil || verified.VerifiedAt == nil {
		t.Error("expected verifier identity and timestamp recorded")
	}
	if !audit.hasAction(entity.AuditActionDocumentVerify) {
		t.Error("expected a document_verify audit event")
	}
}

func TestVerifyDocumentWrongAstrologer(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	owner := seedAstrologer(t, db, "owner@example.com", entity.ApprovalStatusDocumentVerification)
	other := seedAstrologer(t, db, "other@example.com", entity.ApprovalStatusDocumentVerification)

	doc, err := uc.AddDocument(actorContext(entity.RoleAdmin), owner.ID, &dto.AddDocumentRequest{
		DocumentType: "PAN",
		DocumentURL:  "https://storage.example.com/docs/pan.pdf",
	})
	if err != nil {
		t.Fatalf("AddDocument returned error: %v", err)
	}

	_, err = uc.VerifyDocument(actorContext(entity.RoleAdmin), other.ID, doc.ID, &dto.VerifyDocumentRequest{
		Status: string(entity.DocumentStatusVerified),
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound for a document under another astrologer, got %v", err)
	}
}

func TestApproveAstrologer(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "approve@example.com", entity.ApprovalStatusDocumentVerification)

	approved, err := uc.ApproveAstrologer(actorContext(entity.RoleAdmin), astrologer.ID, &dto.ApproveAstrologerRequest{
		Remarks: "Cleared all rounds",
	})
	if err != nil {
		t.Fatalf("ApproveAstrologer returned error: %v", err)
	}
	if approved.ApprovalStatus != string(entity.ApprovalStatusApproved) {
		t.Errorf("expected APPROVED, got %q", approved.ApprovalStatus)
	}
	if approved.ApprovedByID == nil {
		t.Error("expected approving admin recorded")
	}
	if !audit.hasAction(entity.AuditActionAstrologerApprove) {
		t.Error("expected an approve audit event")
	}
}

// Approve and schedule apply regardless of the current status, so a
// rejected profile can be brought back without manual status surgery.
func TestApprovalTransitionsArePermissive(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	rejected := seedAstrologer(t, db, "second-chance@example.com", entity.ApprovalStatusRejected)

	approved, err := uc.ApproveAstrologer(actorContext(entity.RoleAdmin), rejected.ID, &dto.ApproveAstrologerRequest{})
	if err != nil {
		t.Fatalf("approve from REJECTED returned error: %v", err)
	}
	if approved.ApprovalStatus != string(entity.ApprovalStatusApproved) {
		t.Errorf("expected APPROVED, got %q", approved.ApprovalStatus)
	}

	// Scheduling against an already approved profile pulls it back
	// into the interview stage.
	if _, err := uc.ScheduleInterview(actorContext(entity.RoleAdmin), rejected.ID, &dto.ScheduleInterviewRequest{
		RoundNumber:     1,
		InterviewerName: "Review Panel",
		ScheduledAt:     time.Now().Add(time.Hour).Format(time.RFC3339),
	}); err != nil {
		t.Fatalf("schedule from APPROVED returned error: %v", err)
	}
	var saved entity.Astrologer
	db.First(&saved, "id = ?", rejected.ID)
	if saved.ApprovalStatus != entity.ApprovalStatusInterview {
		t.Errorf("expected INTERVIEW after rescheduling, got %q", saved.ApprovalStatus)
	}
}

func TestRejectAstrologer(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "reject@example.com", entity.ApprovalStatusInterview)

	rejected, err := uc.RejectAstrologer(actorContext(entity.RoleAdmin), astrologer.ID, &dto.RejectAstrologerRequest{
		Stage:  string(entity.RejectionStageInterview),
		Reason: "Did not clear the second round",
	})
	if err != nil {
		t.Fatalf("RejectAstrologer returned error: %v", err)
	}
	if rejected.ApprovalStatus != string(entity.ApprovalStatusRejected) {
		t.Errorf("expected REJECTED, got %q", rejected.ApprovalStatus)
	}
	if rejected.AdminRemarks != "Did not clear the second round" {
		t.Errorf("expected reason mirrored into remarks, got %q", rejected.AdminRemarks)
	}

	var history []entity.AstrologerRejectionHistory
	db.Where("astrologer_id = ?", astrologer.ID).Find(&history)
	if len(history) != 1 {
		t.Fatalf("expected 1 rejection history row, got %d", len(history))
	}
	if history[0].Stage != entity.RejectionStageInterview {
		t.Errorf("expected INTERVIEW stage recorded, got %q", history[0].Stage)
	}
	if !audit.hasAction(entity.AuditActionAstrologerReject) {
		t.Error("expected a reject audit event")
	}
}

func TestRejectAstrologerTwiceAppendsHistory(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "repeat@example.com", entity.ApprovalStatusPending)

	if _, err := uc.RejectAstrologer(actorContext(entity.RoleAdmin), astrologer.ID, &dto.RejectAstrologerRequest{
		Stage:  string(entity.RejectionStageProfile),
		Reason: "Incomplete profile",
	}); err != nil {
		t.Fatalf("first rejection returned error: %v", err)
	}

	rejected, err := uc.RejectAstrologer(actorContext(entity.RoleAdmin), astrologer.ID, &dto.RejectAstrologerRequest{
		Stage:  string(entity.RejectionStageDocument),
		Reason: "Document mismatch",
	})
	if err != nil {
		t.Fatalf("second rejection returned error: %v", err)
	}
	if rejected.AdminRemarks != "Document mismatch" {
		t.Errorf("expected remarks from the latest rejection, got %q", rejected.AdminRemarks)
	}

	var history []entity.AstrologerRejectionHistory
	db.Where("astrologer_id = ?", astrologer.ID).Order("id asc").Find(&history)
	if len(history) != 2 {
		t.Fatalf("expected 2 rejection history rows, got %d", len(history))
	}
	// The earlier row is untouched by the later rejection.
	if history[0].Stage != entity.RejectionStageProfile || history[0].Reason != "Incomplete profile" {
		t.Errorf("expected first rejection preserved, got %+v", history[0])
	}
	if history[1].Stage != entity.RejectionStageDocument || history[1].Reason != "Document mismatch" {
		t.Errorf("expected second rejection appended, got %+v", history[1])
	}
}

func TestApprovalRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newApprovalUsecase(db)
	astrologer := seedAstrologer(t, db, "guarded@example.com", entity.ApprovalStatusPending)

	_, err := uc.ApproveAstrologer(actorContext(entity.RoleManager), astrologer.ID, &dto.ApproveAstrologerRequest{})
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized for MANAGER, got %v", err)
	}
}
