package usecase

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/guard"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-cache databases keep the schema visible across pooled
	// connections within a single test.
	dsn := fmt.Sprintf("file:usecase_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Permission{},
		&entity.Role{},
		&entity.RolePermission{},
		&entity.Admin{},
		&entity.User{},
		&entity.Astrologer{},
		&entity.AstrologerAddress{},
		&entity.ExperiencePlatform{},
		&entity.Interview{},
		&entity.AstrologerDocument{},
		&entity.AstrologerRejectionHistory{},
		&entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubAuditService records events synchronously for assertions.
type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) Record(adminID *uuid.UUID, action string, metadata entity.JSON) {
	s.actions = append(s.actions, action)
}

func (s *stubAuditService) Dropped() uint64 { return 0 }

func (s *stubAuditService) Stop() {}

func (s *stubAuditService) hasAction(action string) bool {
	for _, a := range s.actions {
		if a == action {
			return true
		}
	}
	return false
}

func actorContext(role string) context.Context {
	return guard.WithActor(context.Background(), guard.Actor{
		AdminID: uuid.New(),
		Email:   "ops@example.com",
		Role:    role,
	})
}

func seedRole(t *testing.T, db *gorm.DB, name string) *entity.Role {
	t.Helper()
	role := &entity.Role{Name: name}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("failed to seed role %s: %v", name, err)
	}
	return role
}

func seedPermission(t *testing.T, db *gorm.DB, name string) *entity.Permission {
	t.Helper()
	permission := &entity.Permission{Name: name}
	if err := db.Create(permission).Error; err != nil {
		t.Fatalf("failed to seed permission %s: %v", name, err)
	}
	return permission
}

func seedAdmin(t *testing.T, db *gorm.DB, roleID int, email string) *entity.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	active := true
	admin := &entity.Admin{
		ID:       uuid.New(),
		Name:     "Seed Admin",
		Email:    email,
		PhoneNo:  fmt.Sprintf("98%08d", testDBCounter.Add(1)),
		Password: string(hashed),
		RoleID:   roleID,
		IsActive: &active,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to seed admin %s: %v", email, err)
	}
	return admin
}

func seedUser(t *testing.T, db *gorm.DB, name, mobile string) *entity.User {
	t.Helper()
	active := true
	user := &entity.User{
		ID:       uuid.New(),
		Name:     name,
		Mobile:   mobile,
		IsActive: &active,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return user
}

func seedAstrologer(t *testing.T, db *gorm.DB, email string, status entity.ApprovalStatus) *entity.Astrologer {
	t.Helper()
	astrologer := &entity.Astrologer{
		ID:             uuid.New(),
		Name:           "Seed Astrologer",
		Email:          email,
		Languages:      []string{"Hindi", "English"},
		Skills:         []string{"Vedic"},
		ApprovalStatus: status,
	}
	if err := db.Create(astrologer).Error; err != nil {
		t.Fatalf("failed to seed astrologer %s: %v", email, err)
	}
	return astrologer
}
