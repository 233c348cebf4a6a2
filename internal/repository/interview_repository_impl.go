package repository

import (
	"errors"

	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type interviewRepository struct{}

func NewInterviewRepository() domainRepo.InterviewRepository {
	return &interviewRepository{}
}

func (r *interviewRepository) Create(db *gorm.DB, interview *entity.Interview) error {
	return db.Create(interview).Error
}

func (r *interviewRepository) FindByAstrologerAndRound(db *gorm.DB, astrologerID uuid.UUID, round int) (*entity.Interview, error) {
	var interview entity.Interview
	err := db.Where("astrologer_id = ? AND round_number = ?", astrologerID, round).First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}
