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

type RoleUsecase interface {
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	UpdateRole(ctx context.Context, id int, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	DeleteRole(ctx context.Context, id int) error
	AssignPermissionsToRole(ctx context.Context, id int, req *dto.AssignPermissionsRequest) (*dto.RoleResponse, error)
	ListRoles(ctx context.Context) (*dto.RoleListResponse, error)
}

type roleUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
	auditService   service.AuditService
}

func NewRoleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roleRepo repository.RoleRepository,
	permissionRepo repository.PermissionRepository,
	auditService service.AuditService,
) RoleUsecase {
	return &roleUsecase{
		db:             db,
		log:            log,
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		auditService:   auditService,
	}
}

// validatePermissionIDs checks every supplied id exists. All-or-nothing:
// one unknown id fails the whole operation.
func (u *roleUsecase) validatePermissionIDs(tx *gorm.DB, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	unique := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	distinct := make([]int, 0, len(unique))
	for id := range unique {
		distinct = append(distinct, id)
	}

	permissions, err := u.permissionRepo.FindByIDs(tx, distinct)
	if err != nil {
		u.log.Warnf("Failed to find permissions by ids: %+v", err)
		return err
	}
	if len(permissions) != len(distinct) {
		return apperr.InvalidReference("One or more permission IDs are invalid")
	}
	return nil
}

func (u *roleUsecase) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	actor, err := authorize(ctx, guard.OpCreateRole, u.auditService)
	if err != nil {
		return nil, err
	}

	name := normalizeName(req.Name)
	if name == "" {
		return nil, apperr.Validation("Role name is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.roleRepo.FindByName(tx, name)
	if err != nil {
		u.log.Warnf("Failed to find role by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("Role already exists")
	}

	if err := u.validatePermissionIDs(tx, req.PermissionIDs); err != nil {
		return nil, err
	}

	role := &entity.Role{
		Name:        name,
		Description: req.Description,
	}

	if err := u.roleRepo.Create(tx, role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, apperr.AlreadyExists("Role already exists")
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, err
	}

	if err := u.roleRepo.CreateRolePermissions(tx, role.ID, dedupeIDs(req.PermissionIDs)); err != nil {
		u.log.Warnf("Failed to create role permissions: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	created, err := u.roleRepo.FindByID(u.db.WithContext(ctx), role.ID)
	if err != nil {
		u.log.Warnf("Failed to reload role: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionRoleCreate, entity.JSON{
		"role_id": role.ID,
		"name":    role.Name,
	})

	return converter.RoleToResponse(created), nil
}

func (u *roleUsecase) UpdateRole(ctx context.Context, id int, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	actor, err := authorize(ctx, guard.OpUpdateRole, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found")
	}

	if req.Name != "" {
		name := normalizeName(req.Name)
		if name != role.Name {
			existing, err := u.roleRepo.FindByName(tx, name)
			if err != nil {
				u.log.Warnf("Failed to find role by name: %+v", err)
				return nil, err
			}
			if existing != nil {
				return nil, apperr.AlreadyExists("Role already exists")
			}
			role.Name = name
		}
	}
	if req.Description != "" {
		role.Description = req.Description
	}

	if err := u.roleRepo.Update(tx, role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, apperr.AlreadyExists("Role already exists")
		}
		u.log.Warnf("Failed to update role: %+v", err)
		return nil, err
	}

	// Replace the full permission set when one is supplied.
	if req.PermissionIDs != nil {
		if err := u.validatePermissionIDs(tx, *req.PermissionIDs); err != nil {
			return nil, err
		}
		if err := u.roleRepo.DeleteRolePermissions(tx, role.ID); err != nil {
			u.log.Warnf("Failed to delete role permissions: %+v", err)
			return nil, err
		}
		if err := u.roleRepo.CreateRolePermissions(tx, role.ID, dedupeIDs(*req.PermissionIDs)); err != nil {
			u.log.Warnf("Failed to create role permissions: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	updated, err := u.roleRepo.FindByID(u.db.WithContext(ctx), role.ID)
	if err != nil {
		u.log.Warnf("Failed to reload role: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionRoleUpdate, entity.JSON{
		"role_id": role.ID,
		"name":    role.Name,
	})

	return converter.RoleToResponse(updated), nil
}

func (u *roleUsecase) DeleteRole(ctx context.Context, id int) error {
	actor, err := authorize(ctx, guard.OpDeleteRole, u.auditService)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return err
	}
	if role == nil {
		return apperr.NotFound("Role not found")
	}

	inUse, err := u.roleRepo.CountAdminsUsing(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count admins using role: %+v", err)
		return err
	}
	if inUse > 0 {
		return apperr.InUse("Cannot delete role assigned to admins")
	}

	if err := u.roleRepo.DeleteRolePermissions(tx, id); err != nil {
		u.log.Warnf("Failed to delete role permissions: %+v", err)
		return err
	}

	if _, err := u.roleRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete role: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionRoleDelete, entity.JSON{
		"role_id": role.ID,
		"name":    role.Name,
	})

	return nil
}

// AssignPermissionsToRole is additive and idempotent: join rows that
// already exist are skipped, never duplicated.
func (u *roleUsecase) AssignPermissionsToRole(ctx context.Context, id int, req *dto.AssignPermissionsRequest) (*dto.RoleResponse, error) {
	actor, err := authorize(ctx, guard.OpAssignPermissionsToRole, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, apperr.NotFound("Role not found")
	}

	if err := u.validatePermissionIDs(tx, req.PermissionIDs); err != nil {
		return nil, err
	}

	existingIDs, err := u.roleRepo.FindPermissionIDs(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find role permission ids: %+v", err)
		return nil, err
	}
	existing := make(map[int]struct{}, len(existingIDs))
	for _, permissionID := range existingIDs {
		existing[permissionID] = struct{}{}
	}

	var toAdd []int
	for _, permissionID := range dedupeIDs(req.PermissionIDs) {
		if _, ok := existing[permissionID]; !ok {
			toAdd = append(toAdd, permissionID)
		}
	}

	if err := u.roleRepo.CreateRolePermissions(tx, id, toAdd); err != nil {
		u.log.Warnf("Failed to create role permissions: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	updated, err := u.roleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to reload role: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionRoleAssignPerms, entity.JSON{
		"role_id":        id,
		"permission_ids": req.PermissionIDs,
	})

	return converter.RoleToResponse(updated), nil
}

func (u *roleUsecase) ListRoles(ctx context.Context) (*dto.RoleListResponse, error) {
	if _, err := authorize(ctx, guard.OpListRoles, u.auditService); err != nil {
		return nil, err
	}

	roles, err := u.roleRepo.FindAllWithPermissions(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}

	return &dto.RoleListResponse{
		Roles: converter.RolesToResponses(roles),
		Total: len(roles),
	}, nil
}

// dedupeIDs preserves order while dropping repeated ids.
func dedupeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
