package repository

import (
	"errors"

	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type permissionRepository struct{}

func NewPermissionRepository() domainRepo.PermissionRepository {
	return &permissionRepository{}
}

func (r *permissionRepository) Create(db *gorm.DB, permission *entity.Permission) error {
	return db.Create(permission).Error
}

func (r *permissionRepository) Update(db *gorm.DB, permission *entity.Permission) error {
	return db.Save(permission).Error
}

func (r *permissionRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(&entity.Permission{}, id)
	return result.RowsAffected, result.Error
}

func (r *permissionRepository) FindByID(db *gorm.DB, id int) (*entity.Permission, error) {
	var permission entity.Permission
	err := db.First(&permission, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) FindByName(db *gorm.DB, name string) (*entity.Permission, error) {
	var permission entity.Permission
	err := db.Where("name = ?", name).First(&permission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) FindByIDs(db *gorm.DB, ids []int) ([]entity.Permission, error) {
	var permissions []entity.Permission
	if len(ids) == 0 {
		return permissions, nil
	}
	err := db.Where("id IN ?", ids).Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) FindAll(db *gorm.DB) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := db.Order("name asc").Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) CountRolesUsing(db *gorm.DB, permissionID int) (int64, error) {
	var count int64
	err := db.Model(&entity.RolePermission{}).Where("permission_id = ?", permissionID).Count(&count).Error
	return count, err
}
