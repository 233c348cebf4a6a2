package repository

import (
	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"

	"gorm.io/gorm"
)

type rejectionHistoryRepository struct{}

func NewRejectionHistoryRepository() domainRepo.RejectionHistoryRepository {
	return &rejectionHistoryRepository{}
}

func (r *rejectionHistoryRepository) Create(db *gorm.DB, history *entity.AstrologerRejectionHistory) error {
	return db.Create(history).Error
}
