package usecase

import (
	"testing"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAdminUsecase(db *gorm.DB) (AdminUsecase, *stubAuditService) {
	audit := &stubAuditService{}
	uc := NewAdminUsecase(db, testLogger(), repository.NewAdminRepository(), repository.NewRoleRepository(), audit)
	return uc, audit
}

func TestCreateAdmin(t *testing.T) {
	db := setupTestDB(t)
	uc, audit := newAdminUsecase(db)
	role := seedRole(t, db, entity.RoleAdmin)

	created, err := uc.CreateAdmin(actorContext(entity.RoleSuperAdmin), &dto.CreateAdminRequest{
		Name:     "New Admin",
		Email:    "new@example.com",
		PhoneNo:  "9876543210",
		Password: "secret123",
		RoleID:   role.ID,
	})
	if err != nil {
		t.Fatalf("CreateAdmin returned error: %v", err)
	}
	if created.RoleName != entity.RoleAdmin {
		t.Errorf("expected role name %s, got %q", entity.RoleAdmin, created.RoleName)
	}

	// The stored password must be a bcrypt hash, never plaintext.
	var stored entity.Admin
	if err := db.Where("id = ?", created.ID).First(&stored).Error; err != nil {
		t.Fatalf("failed to load created admin: %v", err)
	}
	if stored.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")); err != nil {
		t.Errorf("stored password does not verify: %v", err)
	}
	if !audit.hasAction(entity.AuditActionAdminCreate) {
		t.Error("expected an admin.create audit event")
	}
}

func TestCreateAdminDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)
	role := seedRole(t, db, entity.RoleAdmin)
	seedAdmin(t, db, role.ID, "taken@example.com")

	_, err := uc.CreateAdmin(actorContext(entity.RoleSuperAdmin), &dto.CreateAdminRequest{
		Name:     "Another",
		Email:    "taken@example.com",
		PhoneNo:  "9876500000",
		Password: "secret123",
		RoleID:   role.ID,
	})
	if !apperr.IsKind(err, apperr.KindAlreadyExists) {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
	if err.Error() != "Admin already exists with this email" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestCreateAdminUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)

	_, err := uc.CreateAdmin(actorContext(entity.RoleSuperAdmin), &dto.CreateAdminRequest{
		Name:     "No Role",
		Email:    "norole@example.com",
		PhoneNo:  "9876511111",
		Password: "secret123",
		RoleID:   42,
	})
	if !apperr.IsKind(err, apperr.KindInvalidReference) {
		t.Fatalf("expected InvalidReference, got %v", err)
	}
}

func TestCreateAdminRequiresSuperAdmin(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)
	role := seedRole(t, db, entity.RoleAdmin)

	_, err := uc.CreateAdmin(actorContext(entity.RoleAdmin), &dto.CreateAdminRequest{
		Name:     "X",
		Email:    "x@example.com",
		PhoneNo:  "9876522222",
		Password: "secret123",
		RoleID:   role.ID,
	})
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

func TestUpdateAdminProtectsTopRoleHolder(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)
	superRole := seedRole(t, db, entity.RoleSuperAdmin)
	superAdmin := seedAdmin(t, db, superRole.ID, "root@example.com")

	_, err := uc.UpdateAdmin(actorContext(entity.RoleSuperAdmin), superAdmin.ID, &dto.UpdateAdminRequest{
		Name: "Renamed",
	})
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	if err.Error() != "Cannot modify top role holder" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestDeleteAdminProtectsTopRoleHolder(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)
	superRole := seedRole(t, db, entity.RoleSuperAdmin)
	superAdmin := seedAdmin(t, db, superRole.ID, "root@example.com")

	err := uc.DeleteAdmin(actorContext(entity.RoleSuperAdmin), superAdmin.ID)
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

func TestDeleteAdmin(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)
	role := seedRole(t, db, entity.RoleAdmin)
	admin := seedAdmin(t, db, role.ID, "gone@example.com")

	if err := uc.DeleteAdmin(actorContext(entity.RoleSuperAdmin), admin.ID); err != nil {
		t.Fatalf("DeleteAdmin returned error: %v", err)
	}

	var count int64
	db.Model(&entity.Admin{}).Where("id = ?", admin.ID).Count(&count)
	if count != 0 {
		t.Error("expected admin row to be gone")
	}
}

func TestListAdminsFiltersByAdminRole(t *testing.T) {
	db := setupTestDB(t)
	uc, _ := newAdminUsecase(db)

	superRole := seedRole(t, db, entity.RoleSuperAdmin)
	adminRole := seedRole(t, db, entity.RoleAdmin)
	seedAdmin(t, db, superRole.ID, "root@example.com")
	seedAdmin(t, db, adminRole.ID, "one@example.com")
	seedAdmin(t, db, adminRole.ID, "two@example.com")

	result, err := uc.ListAdmins(actorContext(entity.RoleSuperAdmin), 1, 10)
	if err != nil {
		t.Fatalf("ListAdmins returned error: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("expected 2 admins with ADMIN role, got %d", result.TotalCount)
	}
	for _, admin := range result.Data {
		if admin.RoleName != entity.RoleAdmin {
			t.Errorf("expected only ADMIN role holders, got %q", admin.RoleName)
		}
	}
}
