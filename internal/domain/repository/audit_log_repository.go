package repository

import (
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/pkg/pagination"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, params pagination.Params) ([]entity.AuditLog, int64, error)
}
