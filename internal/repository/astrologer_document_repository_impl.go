package repository

import (
	"errors"

	"astro-admin-api/internal/domain/entity"
	domainRepo "astro-admin-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type astrologerDocumentRepository struct{}

func NewAstrologerDocumentRepository() domainRepo.AstrologerDocumentRepository {
	return &astrologerDocumentRepository{}
}

func (r *astrologerDocumentRepository) Create(db *gorm.DB, document *entity.AstrologerDocument) error {
	return db.Create(document).Error
}

func (r *astrologerDocumentRepository) Update(db *gorm.DB, document *entity.AstrologerDocument) error {
	return db.Save(document).Error
}

func (r *astrologerDocumentRepository) FindByID(db *gorm.DB, id int) (*entity.AstrologerDocument, error) {
	var document entity.AstrologerDocument
	err := db.First(&document, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *astrologerDocumentRepository) FindByAstrologerAndType(db *gorm.DB, astrologerID uuid.UUID, documentType string) (*entity.AstrologerDocument, error) {
	var document entity.AstrologerDocument
	err := db.Where("astrologer_id = ? AND document_type = ?", astrologerID, documentType).First(&document).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}
