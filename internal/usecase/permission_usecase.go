package usecase

import (
	"context"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/converter"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/domain/repository"
	"astro-admin-api/internal/guard"
	"astro-admin-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PermissionUsecase interface {
	CreatePermission(ctx context.Context, req *dto.CreatePermissionRequest) (*dto.PermissionResponse, error)
	UpdatePermission(ctx context.Context, id int, req *dto.UpdatePermissionRequest) (*dto.PermissionResponse, error)
	DeletePermission(ctx context.Context, id int) error
	ListPermissions(ctx context.Context) (*dto.PermissionListResponse, error)
}

type permissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	permissionRepo repository.PermissionRepository
	auditService   service.AuditService
}

func NewPermissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	permissionRepo repository.PermissionRepository,
	auditService service.AuditService,
) PermissionUsecase {
	return &permissionUsecase{
		db:             db,
		log:            log,
		permissionRepo: permissionRepo,
		auditService:   auditService,
	}
}

func (u *permissionUsecase) CreatePermission(ctx context.Context, req *dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	actor, err := authorize(ctx, guard.OpCreatePermission, u.auditService)
	if err != nil {
		return nil, err
	}

	name := normalizeName(req.Name)
	if name == "" {
		return nil, apperr.Validation("Permission name is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.permissionRepo.FindByName(tx, name)
	if err != nil {
		u.log.Warnf("Failed to find permission by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("Permission already exists")
	}

	permission := &entity.Permission{
		Name:        name,
		Description: req.Description,
	}

	if err := u.permissionRepo.Create(tx, permission); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, apperr.AlreadyExists("Permission already exists")
		}
		u.log.Warnf("Failed to create permission: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionPermissionCreate, entity.JSON{
		"permission_id": permission.ID,
		"name":          permission.Name,
	})

	return converter.PermissionToResponse(permission), nil
}

func (u *permissionUsecase) UpdatePermission(ctx context.Context, id int, req *dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	actor, err := authorize(ctx, guard.OpUpdatePermission, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	permission, err := u.permissionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find permission: %+v", err)
		return nil, err
	}
	if permission == nil {
		return nil, apperr.NotFound("Permission not found")
	}

	if req.Name != "" {
		name := normalizeName(req.Name)
		if name != permission.Name {
			existing, err := u.permissionRepo.FindByName(tx, name)
			if err != nil {
				u.log.Warnf("Failed to find permission by name: %+v", err)
				return nil, err
			}
			if existing != nil {
				return nil, apperr.AlreadyExists("Permission already exists")
			}
			permission.Name = name
		}
	}
	if req.Description != "" {
		permission.Description = req.Description
	}

	if err := u.permissionRepo.Update(tx, permission); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, apperr.AlreadyExists("Permission already exists")
		}
		u.log.Warnf("Failed to update permission: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionPermissionUpdate, entity.JSON{
		"permission_id": permission.ID,
		"name":          permission.Name,
	})

	return converter.PermissionToResponse(permission), nil
}

func (u *permissionUsecase) DeletePermission(ctx context.Context, id int) error {
	actor, err := authorize(ctx, guard.OpDeletePermission, u.auditService)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	permission, err := u.permissionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find permission: %+v", err)
		return err
	}
	if permission == nil {
		return apperr.NotFound("Permission not found")
	}

	inUse, err := u.permissionRepo.CountRolesUsing(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count roles using permission: %+v", err)
		return err
	}
	if inUse > 0 {
		return apperr.InUse("Cannot delete permission assigned to roles")
	}

	if _, err := u.permissionRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete permission: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionPermissionDelete, entity.JSON{
		"permission_id": permission.ID,
		"name":          permission.Name,
	})

	return nil
}

func (u *permissionUsecase) ListPermissions(ctx context.Context) (*dto.PermissionListResponse, error) {
	if _, err := authorize(ctx, guard.OpListPermissions, u.auditService); err != nil {
		return nil, err
	}

	permissions, err := u.permissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all permissions: %+v", err)
		return nil, err
	}

	return &dto.PermissionListResponse{
		Permissions: converter.PermissionsToResponses(permissions),
		Total:       len(permissions),
	}, nil
}
