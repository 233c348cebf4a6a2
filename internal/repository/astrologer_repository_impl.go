package repository

import (
	"errors"

	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type astrologerRepository struct{}

func NewAstrologerRepository() domainRepo.AstrologerRepository {
	return &astrologerRepository{}
}

func (r *astrologerRepository) Create(db *gorm.DB, astrologer *entity.Astrologer) error {
	return db.Create(astrologer).Error
}

func (r *astrologerRepository) Update(db *gorm.DB, astrologer *entity.Astrologer) error {
	return db.Omit("Addresses", "ExperiencePlatforms", "Interviews", "Documents", "RejectionHistory").
		Save(astrologer).Error
}

// Delete removes the astrologer's child rows first, then the astrologer
// itself. Callers wrap this in a transaction.
func (r *astrologerRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	children := []interface{}{
		&entity.AstrologerAddress{},
		&entity.ExperiencePlatform{},
		&entity.Interview{},
		&entity.AstrologerDocument{},
		&entity.AstrologerRejectionHistory{},
	}
	for _, child := range children {
		if err := db.Where("astrologer_id = ?", id).Delete(child).Error; err != nil {
			return 0, err
		}
	}

	result := db.Where("id = ?", id).Delete(&entity.Astrologer{})
	return result.RowsAffected, result.Error
}

func (r *astrologerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Astrologer, error) {
	var astrologer entity.Astrologer
	err := db.Preload("Addresses").
		Preload("ExperiencePlatforms").
		Preload("Interviews").
		Preload("Documents").
		Preload("RejectionHistory").
		Where("id = ?", id).
		First(&astrologer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &astrologer, nil
}

func (r *astrologerRepository) FindByEmail(db *gorm.DB, email string) (*entity.Astrologer, error) {
	var astrologer entity.Astrologer
	err := db.Where("email = ?", email).First(&astrologer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &astrologer, nil
}

// sortColumns whitelists sortable fields.
var sortColumns = map[string]string{
	"experience": "experience",
	"price":      "price",
	"rating":     "rating",
}

func (r *astrologerRepository) Search(db *gorm.DB, filter domainRepo.AstrologerSearchFilter) ([]entity.Astrologer, int64, error) {
	filtered := func() *gorm.DB {
		q := db.Model(&entity.Astrologer{})
		if filter.Query != "" {
			like := "%" + filter.Query + "%"
			q = q.Where("name LIKE ? OR skills LIKE ? OR languages LIKE ?", like, like, like)
		}
		if len(filter.Statuses) > 0 {
			q = q.Where("approval_status IN ?", filter.Statuses)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at desc"
	if column, ok := sortColumns[filter.SortBy]; ok {
		direction := "asc"
		if filter.SortOrder == "desc" {
			direction = "desc"
		}
		order = column + " " + direction
	}

	var astrologers []entity.Astrologer
	err := filtered().
		Order(order).
		Limit(filter.Params.Limit).
		Offset(filter.Params.Offset()).
		Find(&astrologers).Error
	if err != nil {
		return nil, 0, err
	}
	return astrologers, total, nil
}
