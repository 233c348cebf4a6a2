package usecase

import (
	"context"
	"time"

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
	"gorm.io/gorm"
)

type UserUsecase interface {
	ListUsers(ctx context.Context, query string, page, limit int) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context, query string, page, limit int) (*dto.UserListResponse, error) {
	if _, err := authorize(ctx, guard.OpListUsers, u.auditService); err != nil {
		return nil, err
	}

	params := pagination.Normalize(page, limit)
	users, total, err := u.userRepo.Search(u.db.WithContext(ctx), query, params)
	if err != nil {
		u.log.Warnf("Failed to search users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Data:        converter.UsersToResponses(users),
		TotalCount:  total,
		CurrentPage: params.Page,
		TotalPages:  pagination.TotalPages(total, params.Limit),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	if _, err := authorize(ctx, guard.OpGetUser, u.auditService); err != nil {
		return nil, err
	}

	// Soft-deleted and deactivated users are invisible to reads.
	user, err := u.userRepo.FindActiveByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	actor, err := authorize(ctx, guard.OpUpdateUser, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	if req.Mobile != "" && req.Mobile != user.Mobile {
		existing, err := u.userRepo.FindByMobile(tx, req.Mobile)
		if err != nil {
			u.log.Warnf("Failed to find user by mobile: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Validation("Mobile number already in use")
		}
		user.Mobile = req.Mobile
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, apperr.Validation("Invalid birth date format, expected YYYY-MM-DD")
		}
		user.BirthDate = &birthDate
	}
	if req.BirthTime != "" {
		user.BirthTime = req.BirthTime
	}
	if req.Occupation != "" {
		user.Occupation = req.Occupation
	}
	if req.IsActive != nil {
		user.IsActive = req.IsActive
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "mobile") {
			return nil, apperr.Validation("Mobile number already in use")
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionUserUpdate, entity.JSON{
		"user_id": user.ID.String(),
	})

	return converter.UserToResponse(user), nil
}

// DeleteUser soft-deletes: the row stays, flagged deleted and deactivated.
func (u *userUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	actor, err := authorize(ctx, guard.OpDeleteUser, u.auditService)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}

	inactive := false
	user.IsDeleted = true
	user.IsActive = &inactive

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionUserDelete, entity.JSON{
		"user_id": user.ID.String(),
	})

	return nil
}
