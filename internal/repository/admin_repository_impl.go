package repository

import (
	"errors"

	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"
	"astro-admin-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepository struct{}

func NewAdminRepository() domainRepo.AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(db *gorm.DB, admin *entity.Admin) error {
	return db.Create(admin).Error
}

func (r *adminRepository) Update(db *gorm.DB, admin *entity.Admin) error {
	return db.Save(admin).Error
}

func (r *adminRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Admin{})
	return result.RowsAffected, result.Error
}

func (r *adminRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	var admin entity.Admin
	err := db.Preload("Role").Where("id = ?", id).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(db *gorm.DB, email string) (*entity.Admin, error) {
	var admin entity.Admin
	err := db.Preload("Role").Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByPhoneNo(db *gorm.DB, phoneNo string) (*entity.Admin, error) {
	var admin entity.Admin
	err := db.Where("phone_no = ?", phoneNo).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByRoleName(db *gorm.DB, roleName string, params pagination.Params) ([]entity.Admin, int64, error) {
	// Build the filter twice; reusing a statement after Count pollutes it.
	filtered := func() *gorm.DB {
		return db.Model(&entity.Admin{}).
			Joins("JOIN roles ON roles.id = admins.role_id").
			Where("roles.name = ?", roleName)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []entity.Admin
	err := filtered().Preload("Role").
		Order("admins.created_at desc").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}
