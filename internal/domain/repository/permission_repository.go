package repository

import (
	"astro-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

// PermissionRepository persists permission records. Implementations are
// stateless; the caller passes the db handle (or an open transaction) so
// multi-row operations share one transaction boundary.
type PermissionRepository interface {
	Create(db *gorm.DB, permission *entity.Permission) error
	Update(db *gorm.DB, permission *entity.Permission) error
	Delete(db *gorm.DB, id int) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Permission, error)
	FindByName(db *gorm.DB, name string) (*entity.Permission, error)
	FindByIDs(db *gorm.DB, ids []int) ([]entity.Permission, error)
	FindAll(db *gorm.DB) ([]entity.Permission, error)
	CountRolesUsing(db *gorm.DB, permissionID int) (int64, error)
}
