package repository

import (
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(db *gorm.DB, admin *entity.Admin) error
	Update(db *gorm.DB, admin *entity.Admin) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Admin, error)
	FindByPhoneNo(db *gorm.DB, phoneNo string) (*entity.Admin, error)
	// FindByRoleName lists admins holding the named role, newest first.
	FindByRoleName(db *gorm.DB, roleName string, params pagination.Params) ([]entity.Admin, int64, error)
}
