package repository

import (
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AstrologerSearchFilter narrows and orders astrologer listings.
type AstrologerSearchFilter struct {
	// Query matches a substring against name, skills and languages.
	Query string
	// Statuses limits results to the given approval statuses. Empty
	// means all.
	Statuses []entity.ApprovalStatus
	// SortBy is one of experience, price, rating. Empty sorts by
	// creation time descending.
	SortBy    string
	SortOrder string // asc or desc
	Params    pagination.Params
}

type AstrologerRepository interface {
	Create(db *gorm.DB, astrologer *entity.Astrologer) error
	Update(db *gorm.DB, astrologer *entity.Astrologer) error
	// Delete removes the astrologer and all owned child rows.
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Astrologer, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Astrologer, error)
	Search(db *gorm.DB, filter AstrologerSearchFilter) ([]entity.Astrologer, int64, error)
}

type InterviewRepository interface {
	Create(db *gorm.DB, interview *entity.Interview) error
	FindByAstrologerAndRound(db *gorm.DB, astrologerID uuid.UUID, round int) (*entity.Interview, error)
}

type AstrologerDocumentRepository interface {
	Create(db *gorm.DB, document *entity.AstrologerDocument) error
	Update(db *gorm.DB, document *entity.AstrologerDocument) error
	FindByID(db *gorm.DB, id int) (*entity.AstrologerDocument, error)
	FindByAstrologerAndType(db *gorm.DB, astrologerID uuid.UUID, documentType string) (*entity.AstrologerDocument, error)
}

// RejectionHistoryRepository is append-only: no update or delete exists.
// Reads go through the astrologer's RejectionHistory preload.
type RejectionHistoryRepository interface {
	Create(db *gorm.DB, history *entity.AstrologerRejectionHistory) error
}
