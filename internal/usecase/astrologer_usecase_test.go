package usecase

import (
	"testing"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newAstrologerUsecase(db *gorm.DB) (AstrologerUsecase, *stubAuditService) {
	audit := &stubAuditService{}
	uc := NewAstrologerUsecase(db, testLogger(), repository.NewAstrologerRepository(), audit)
	return uc, audit
}

func TestCreateAstrologer(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newAstrologerUsecase(db)

	created, err := uc.CreateAstrologer(actorContext(entity.RoleAdmin), &dto.CreateAstrologerRequest{
		Name:        "Pandit Sharma",
		Email:       "sharma@example.com",
		ContactNo:   "9800000001",
		DateOfBirth: "1985-06-15",
		Languages:   []string{"Hindi", "English"},
		Skills:      []string{"Vedic", "Tarot"},
		Experience:  12,
		Price:       25,
		Addresses: []dto.AddressRequest{
			{Line1: "12 Temple Road", City: "Varanasi", Pincode: "221001"},
		},
		ExperiencePlatforms: []dto.ExperiencePlatformRequest{
			{PlatformName: "AstroTalk", Years: 3},
		},
	})
	if err != nil {
		t.Fatalf("CreateAstrologer returned error: %v", err)
	}
	if created.ApprovalStatus != string(entity.ApprovalStatusPending) {
		t.Errorf("expected PENDING status on creation, got %q", created.ApprovalStatus)
	}

	var addresses, platforms int64
	db.Model(&entity.AstrologerAddress{}).Where("astrologer_id = ?", created.ID).Count(&addresses)
	db.Model(&entity.ExperiencePlatform{}).Where("astrologer_id = ?", created.ID).Count(&platforms)
	if addresses != 1 || platforms != 1 {
		t.Errorf("expected 1 address and 1 platform, got %d and %d", addresses, platforms)
	}
	if !audit.hasAction(entity.AuditActionAstrologerCreate) {
		t.Error("expected an astrologer.create audit event")
	}
}

func TestCreateAstrologerDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)
	seedAstrologer(t, db, "taken@example.com", entity.ApprovalStatusPending)

	_, err := uc.CreateAstrologer(actorContext(entity.RoleAdmin), &dto.CreateAstrologerRequest{
		Name:  "Duplicate",
		Email: "taken@example.com",
	})
	if !apperr.IsKind(err, apperr.KindAlreadyExists) {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestCreateAstrologerBadBirthDate(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)

	_, err := uc.CreateAstrologer(actorContext(entity.RoleAdmin), &dto.CreateAstrologerRequest{
		Name:        "Bad Date",
		Email:       "bad@example.com",
		DateOfBirth: "15-06-1985",
	})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected Validation error, got %v", err)
	}
}

func TestUpdateAstrologerPartial(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)
	astrologer := seedAstrologer(t, db, "update@example.com", entity.ApprovalStatusPending)

	price := 49.0
	updated, err := uc.UpdateAstrologer(actorContext(entity.RoleAdmin), astrologer.ID, &dto.UpdateAstrologerRequest{
		Price: &price,
	})
	if err != nil {
		t.Fatalf("UpdateAstrologer returned error: %v", err)
	}
	if updated.Price != 49 {
		t.Errorf("expected price 49, got %v", updated.Price)
	}
	if updated.Name != astrologer.Name {
		t.Errorf("expected untouched name %q, got %q", astrologer.Name, updated.Name)
	}
	if updated.ApprovalStatus != string(entity.ApprovalStatusPending) {
		t.Errorf("profile update must not change approval status, got %q", updated.ApprovalStatus)
	}
}

func TestDeleteAstrologerCascades(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)
	astrologer := seedAstrologer(t, db, "cascade@example.com", entity.ApprovalStatusInterview)

	children := []interface{}{
		&entity.AstrologerAddress{AstrologerID: astrologer.ID, Line1: "A", City: "B"},
		&entity.Interview{AstrologerID: astrologer.ID, RoundNumber: 1, InterviewerName: "X", Status: entity.InterviewStatusScheduled},
		&entity.AstrologerDocument{AstrologerID: astrologer.ID, DocumentType: "AADHAAR", DocumentURL: "https://docs/1", Status: entity.DocumentStatusPending},
	}
	for _, child := range children {
		if err := db.Create(child).Error; err != nil {
			t.Fatalf("failed to seed child row: %v", err)
		}
	}

	if err := uc.DeleteAstrologer(actorContext(entity.RoleSuperAdmin), astrologer.ID); err != nil {
		t.Fatalf("DeleteAstrologer returned error: %v", err)
	}

	var count int64
	db.Model(&entity.Interview{}).Where("astrologer_id = ?", astrologer.ID).Count(&count)
	if count != 0 {
		t.Error("expected interviews removed with astrologer")
	}
	db.Model(&entity.AstrologerDocument{}).Where("astrologer_id = ?", astrologer.ID).Count(&count)
	if count != 0 {
		t.Error("expected documents removed with astrologer")
	}
}

func TestDeleteAstrologerRoleRestriction(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)
	astrologer := seedAstrologer(t, db, "protected@example.com", entity.ApprovalStatusPending)

	err := uc.DeleteAstrologer(actorContext(entity.RoleAdmin), astrologer.ID)
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized for ADMIN, got %v", err)
	}

	// MANAGER is allowed to delete.
	if err := uc.DeleteAstrologer(actorContext(entity.RoleManager), astrologer.ID); err != nil {
		t.Fatalf("expected MANAGER delete to succeed, got %v", err)
	}
}

func TestDeleteAstrologerNotFound(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)

	err := uc.DeleteAstrologer(actorContext(entity.RoleSuperAdmin), uuid.New())
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListAstrologersByStatus(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)

	seedAstrologer(t, db, "p1@example.com", entity.ApprovalStatusPending)
	seedAstrologer(t, db, "p2@example.com", entity.ApprovalStatusInterview)
	seedAstrologer(t, db, "p3@example.com", entity.ApprovalStatusDocumentVerification)
	seedAstrologer(t, db, "a1@example.com", entity.ApprovalStatusApproved)
	seedAstrologer(t, db, "r1@example.com", entity.ApprovalStatusRejected)

	query := &dto.ListAstrologersQuery{Page: 1, Limit: 10}

	pending, err := uc.ListPendingAstrologers(actorContext(entity.RoleAdmin), query)
	if err != nil {
		t.Fatalf("ListPendingAstrologers returned error: %v", err)
	}
	if pending.TotalCount != 3 {
		t.Errorf("expected 3 in-pipeline astrologers, got %d", pending.TotalCount)
	}

	approved, err := uc.ListApprovedAstrologers(actorContext(entity.RoleAdmin), query)
	if err != nil {
		t.Fatalf("ListApprovedAstrologers returned error: %v", err)
	}
	if approved.TotalCount != 1 {
		t.Errorf("expected 1 approved astrologer, got %d", approved.TotalCount)
	}

	rejected, err := uc.ListRejectedAstrologers(actorContext(entity.RoleAdmin), query)
	if err != nil {
		t.Fatalf("ListRejectedAstrologers returned error: %v", err)
	}
	if rejected.TotalCount != 1 {
		t.Errorf("expected 1 rejected astrologer, got %d", rejected.TotalCount)
	}

	all, err := uc.ListAstrologers(actorContext(entity.RoleAdmin), query)
	if err != nil {
		t.Fatalf("ListAstrologers returned error: %v", err)
	}
	if all.TotalCount != 5 {
		t.Errorf("expected 5 astrologers in total, got %d", all.TotalCount)
	}
}

func TestListAstrologersSort(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAstrologerUsecase(db)

	low := seedAstrologer(t, db, "low@example.com", entity.ApprovalStatusApproved)
	db.Model(low).Update("price", 10)
	high := seedAstrologer(t, db, "high@example.com", entity.ApprovalStatusApproved)
	db.Model(high).Update("price", 90)

	result, err := uc.ListAstrologers(actorContext(entity.RoleAdmin), &dto.ListAstrologersQuery{
		SortBy:    "price",
		SortOrder: "desc",
		Page:      1,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("ListAstrologers returned error: %v", err)
	}
	if len(result.Data) != 2 || result.Data[0].Price != 90 {
		t.Errorf("expected price-descending order, got %+v", result.Data)
	}
}
