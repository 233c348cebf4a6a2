package repository

import (
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Update(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	// FindActiveByID excludes soft-deleted and deactivated users.
	FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByMobile(db *gorm.DB, mobile string) (*entity.User, error)
	// Search matches a substring against name and mobile, newest first.
	Search(db *gorm.DB, query string, params pagination.Params) ([]entity.User, int64, error)
}
