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
	"astro-admin-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminUsecase interface {
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error)
	UpdateAdmin(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
	ListAdmins(ctx context.Context, page, limit int) (*dto.AdminListResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	roleRepo     repository.RoleRepository
	auditService service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	roleRepo repository.RoleRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		roleRepo:     roleRepo,
		auditService: auditService,
	}
}

func (u *adminUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	actor, err := authorize(ctx, guard.OpCreateAdmin, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.roleRepo.FindByID(tx, req.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, apperr.InvalidReference("Role not found")
	}

	existing, err := u.adminRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("Admin already exists with this email")
	}

	byPhone, err := u.adminRepo.FindByPhoneNo(tx, req.PhoneNo)
	if err != nil {
		u.log.Warnf("Failed to find admin by phone: %+v", err)
		return nil, err
	}
	if byPhone != nil {
		return nil, apperr.AlreadyExists("Phone number already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	admin := &entity.Admin{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		PhoneNo:  req.PhoneNo,
		Password: string(hashedPassword),
		RoleID:   req.RoleID,
		IsActive: &active,
	}

	if err := u.adminRepo.Create(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperr.AlreadyExists("Admin already exists with this email")
		}
		if isDuplicateKeyError(err, "phone_no") {
			return nil, apperr.AlreadyExists("Phone number already in use")
		}
		if isForeignKeyError(err, "role") {
			return nil, apperr.InvalidReference("Role not found")
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	admin.Role = *role

	u.auditService.Record(&actor.AdminID, entity.AuditActionAdminCreate, entity.JSON{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
		"role":     role.Name,
	})

	return converter.AdminToResponse(admin), nil
}

func (u *adminUsecase) UpdateAdmin(ctx context.Context, id uuid.UUID, req *dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	actor, err := authorize(ctx, guard.OpUpdateAdmin, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, apperr.NotFound("Admin not found")
	}

	// The holder of the top role is immutable through this API.
	if admin.Role.Name == entity.RoleSuperAdmin {
		return nil, apperr.Unauthorized("Cannot modify top role holder")
	}

	if req.Email != "" && req.Email != admin.Email {
		existing, err := u.adminRepo.FindByEmail(tx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to find admin by email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, apperr.AlreadyExists("Admin already exists with this email")
		}
		admin.Email = req.Email
	}

	if req.RoleID != 0 && req.RoleID != admin.RoleID {
		role, err := u.roleRepo.FindByID(tx, req.RoleID)
		if err != nil {
			u.log.Warnf("Failed to find role: %+v", err)
			return nil, err
		}
		if role == nil {
			return nil, apperr.InvalidReference("Role not found")
		}
		admin.RoleID = req.RoleID
		admin.Role = *role
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.PhoneNo != "" {
		admin.PhoneNo = req.PhoneNo
	}
	if req.IsActive != nil {
		admin.IsActive = req.IsActive
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		admin.Password = string(hashedPassword)
	}

	if err := u.adminRepo.Update(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperr.AlreadyExists("Admin already exists with this email")
		}
		if isDuplicateKeyError(err, "phone_no") {
			return nil, apperr.AlreadyExists("Phone number already in use")
		}
		u.log.Warnf("Failed to update admin: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAdminUpdate, entity.JSON{
		"admin_id": admin.ID.String(),
	})

	return converter.AdminToResponse(admin), nil
}

func (u *adminUsecase) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	actor, err := authorize(ctx, guard.OpDeleteAdmin, u.auditService)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admin, err := u.adminRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admin: %+v", err)
		return err
	}
	if admin == nil {
		return apperr.NotFound("Admin not found")
	}

	if admin.Role.Name == entity.RoleSuperAdmin {
		return apperr.Unauthorized("Cannot modify top role holder")
	}

	affectedRows, err := u.adminRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete admin: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return apperr.NotFound("Admin not found")
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAdminDelete, entity.JSON{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
	})

	return nil
}

// ListAdmins returns generic admins only: the protected top role and
// managers are excluded by filtering on the ADMIN role name.
func (u *adminUsecase) ListAdmins(ctx context.Context, page, limit int) (*dto.AdminListResponse, error) {
	if _, err := authorize(ctx, guard.OpListAdmins, u.auditService); err != nil {
		return nil, err
	}

	params := pagination.Normalize(page, limit)
	admins, total, err := u.adminRepo.FindByRoleName(u.db.WithContext(ctx), entity.RoleAdmin, params)
	if err != nil {
		u.log.Warnf("Failed to find admins: %+v", err)
		return nil, err
	}

	return &dto.AdminListResponse{
		Data:        converter.AdminsToResponses(admins),
		TotalCount:  total,
		CurrentPage: params.Page,
		TotalPages:  pagination.TotalPages(total, params.Limit),
	}, nil
}
