package usecase

import (
	"context"

	"astro-admin-api/internal/converter"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/repository"
	"astro-admin-api/internal/guard"
	"astro-admin-api/internal/service"
	"astro-admin-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
	auditService service.AuditService
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository, auditService service.AuditService) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
		auditService: auditService,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error) {
	if _, err := authorize(ctx, guard.OpListAuditLogs, u.auditService); err != nil {
		return nil, err
	}

	params := pagination.Normalize(page, limit)
	logs, total, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), params)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Data:        converter.AuditLogsToResponses(logs),
		TotalCount:  total,
		CurrentPage: params.Page,
		TotalPages:  pagination.TotalPages(total, params.Limit),
	}, nil
}
