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

func newUserUsecase(db *gorm.DB) (UserUsecase, *stubAuditService) {
	audit := &stubAuditService{}
	uc := NewUserUsecase(db, testLogger(), repository.NewUserRepository(), audit)
	return uc, audit
}

func TestListUsersSearch(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newUserUsecase(db)

	seedUser(t, db, "Asha Sharma", "9800000001")
	seedUser(t, db, "Ravi Kumar", "9800000002")
	seedUser(t, db, "Asha Patel", "9811111111")

	result, err := uc.ListUsers(actorContext(entity.RoleAdmin), "Asha", 1, 10)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("expected 2 matches for Asha, got %d", result.TotalCount)
	}

	// Mobile substring search
	result, err = uc.ListUsers(actorContext(entity.RoleAdmin), "98111", 1, 10)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("expected 1 match by mobile, got %d", result.TotalCount)
	}
}

func TestListUsersPagination(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newUserUsecase(db)

	for i := 0; i < 15; i++ {
		seedUser(t, db, "User", uuid.New().String()[:18])
	}

	result, err := uc.ListUsers(actorContext(entity.RoleAdmin), "", 2, 10)
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if result.TotalCount != 15 {
		t.Errorf("expected total 15, got %d", result.TotalCount)
	}
	if len(result.Data) != 5 {
		t.Errorf("expected 5 rows on page 2, got %d", len(result.Data))
	}
	if result.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", result.TotalPages)
	}
}

func TestUpdateUserMobileConflict(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newUserUsecase(db)

	seedUser(t, db, "First", "9800000001")
	second := seedUser(t, db, "Second", "9800000002")

	_, err := uc.UpdateUser(actorContext(entity.RoleAdmin), second.ID, &dto.UpdateUserRequest{
		Mobile: "9800000001",
	})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected Validation error, got %v", err)
	}
	if err.Error() != "Mobile number already in use" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newUserUsecase(db)

	_, err := uc.UpdateUser(actorContext(entity.RoleAdmin), uuid.New(), &dto.UpdateUserRequest{Name: "X"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDeleteUserIsSoft(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newUserUsecase(db)
	user := seedUser(t, db, "Leaving", "9800000009")

	if err := uc.DeleteUser(actorContext(entity.RoleAdmin), user.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}

	var stored entity.User
	if err := db.Where("id = ?", user.ID).First(&stored).Error; err != nil {
		t.Fatalf("expected user row to survive soft delete: %v", err)
	}
	if !stored.IsDeleted {
		t.Error("expected IsDeleted true")
	}
	if stored.IsActive == nil || *stored.IsActive {
		t.Error("expected IsActive false")
	}
	if !audit.hasAction(entity.AuditActionUserDelete) {
		t.Error("expected a user.delete audit event")
	}
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newUserUsecase(db)
	user := seedUser(t, db, "Visible", "9800000021")

	got, err := uc.GetUser(actorContext(entity.RoleAdmin), user.ID)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}
	if got.ID != user.ID || got.Name != "Visible" {
		t.Errorf("unexpected user returned: %+v", got)
	}
}

func TestGetUserExcludesSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newUserUsecase(db)
	user := seedUser(t, db, "Gone", "9800000022")

	if err := uc.DeleteUser(actorContext(entity.RoleAdmin), user.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}

	_, err := uc.GetUser(actorContext(entity.RoleAdmin), user.ID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected NotFound for a soft-deleted user, got %v", err)
	}

	// The row itself is still in storage.
	var count int64
	db.Model(&entity.User{}).Where("id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Error("expected the soft-deleted row to remain")
	}
}

func TestUserOperationsRequireAdmin(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newUserUsecase(db)
	user := seedUser(t, db, "Someone", "9800000011")

	_, err := uc.ListUsers(actorContext(entity.RoleManager), "", 1, 10)
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized for MANAGER, got %v", err)
	}
	if err.Error() != "Admin only" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	if err := uc.DeleteUser(actorContext(entity.RoleManager), user.ID); !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized for MANAGER delete, got %v", err)
	}

	// Denied attempts land on the audit trail.
	if !audit.hasAction(entity.AuditActionAuthorizationDenied) {
		t.Error("expected an authorization.denied audit event")
	}
}
