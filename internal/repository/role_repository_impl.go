package repository

import (
	"errors"

	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) Create(db *gorm.DB, role *entity.Role) error {
	return db.Omit("Permissions").Create(role).Error
}

func (r *roleRepository) Update(db *gorm.DB, role *entity.Role) error {
	return db.Omit("Permissions").Save(role).Error
}

func (r *roleRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(&entity.Role{}, id)
	return result.RowsAffected, result.Error
}

func (r *roleRepository) FindByID(db *gorm.DB, id int) (*entity.Role, error) {
	var role entity.Role
	err := db.Preload("Permissions").First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	var role entity.Role
	err := db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindAllWithPermissions(db *gorm.DB) ([]entity.Role, error) {
	var roles []entity.Role
	err := db.Preload("Permissions").Order("name asc").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) CountAdminsUsing(db *gorm.DB, roleID int) (int64, error) {
	var count int64
	err := db.Model(&entity.Admin{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

func (r *roleRepository) CreateRolePermissions(db *gorm.DB, roleID int, permissionIDs []int) error {
	if len(permissionIDs) == 0 {
		return nil
	}
	rows := make([]entity.RolePermission, 0, len(permissionIDs))
	for _, permissionID := range permissionIDs {
		rows = append(rows, entity.RolePermission{RoleID: roleID, PermissionID: permissionID})
	}
	return db.Create(&rows).Error
}

func (r *roleRepository) DeleteRolePermissions(db *gorm.DB, roleID int) error {
	return db.Where("role_id = ?", roleID).Delete(&entity.RolePermission{}).Error
}

func (r *roleRepository) FindPermissionIDs(db *gorm.DB, roleID int) ([]int, error) {
	var ids []int
	err := db.Model(&entity.RolePermission{}).Where("role_id = ?", roleID).Pluck("permission_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
