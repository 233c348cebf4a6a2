package repository

import (
	"astro-admin-api/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(db *gorm.DB, role *entity.Role) error
	Update(db *gorm.DB, role *entity.Role) error
	Delete(db *gorm.DB, id int) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.Role, error)
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
	FindAllWithPermissions(db *gorm.DB) ([]entity.Role, error)
	CountAdminsUsing(db *gorm.DB, roleID int) (int64, error)

	// Join-row management. Kept explicit so replace and additive-assign
	// semantics stay exact.
	CreateRolePermissions(db *gorm.DB, roleID int, permissionIDs []int) error
	DeleteRolePermissions(db *gorm.DB, roleID int) error
	FindPermissionIDs(db *gorm.DB, roleID int) ([]int, error)
}
