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

type AstrologerUsecase interface {
	CreateAstrologer(ctx context.Context, req *dto.CreateAstrologerRequest) (*dto.AstrologerResponse, error)
	UpdateAstrologer(ctx context.Context, id uuid.UUID, req *dto.UpdateAstrologerRequest) (*dto.AstrologerResponse, error)
	DeleteAstrologer(ctx context.Context, id uuid.UUID) error
	GetAstrologer(ctx context.Context, id uuid.UUID) (*dto.AstrologerResponse, error)
	// ListAstrologers searches across all approval statuses.
	ListAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error)
	// ListPendingAstrologers lists profiles still inside the onboarding
	// pipeline: PENDING, INTERVIEW and DOCUMENT_VERIFICATION.
	ListPendingAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error)
	ListApprovedAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error)
	ListRejectedAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error)
}

type astrologerUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	astrologerRepo repository.AstrologerRepository
	auditService   service.AuditService
}

func NewAstrologerUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	astrologerRepo repository.AstrologerRepository,
	auditService service.AuditService,
) AstrologerUsecase {
	return &astrologerUsecase{
		db:             db,
		log:            log,
		astrologerRepo: astrologerRepo,
		auditService:   auditService,
	}
}

func (u *astrologerUsecase) CreateAstrologer(ctx context.Context, req *dto.CreateAstrologerRequest) (*dto.AstrologerResponse, error) {
	actor, err := authorize(ctx, guard.OpCreateAstrologer, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.astrologerRepo.FindByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find astrologer by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("Astrologer already exists with this email")
	}

	astrologer := &entity.Astrologer{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		ContactNo:      req.ContactNo,
		Gender:         req.Gender,
		Languages:      req.Languages,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Price:          req.Price,
		About:          req.About,
		ProfilePic:     req.ProfilePic,
		ApprovalStatus: entity.ApprovalStatusPending,
	}

	if req.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, apperr.Validation("Invalid date of birth format, expected YYYY-MM-DD")
		}
		astrologer.DateOfBirth = &dateOfBirth
	}

	for _, addr := range req.Addresses {
		astrologer.Addresses = append(astrologer.Addresses, entity.AstrologerAddress{
			AstrologerID: astrologer.ID,
			Line1:        addr.Line1,
			Line2:        addr.Line2,
			City:         addr.City,
			State:        addr.State,
			Pincode:      addr.Pincode,
		})
	}

	for _, platform := range req.ExperiencePlatforms {
		astrologer.ExperiencePlatforms = append(astrologer.ExperiencePlatforms, entity.ExperiencePlatform{
			AstrologerID: astrologer.ID,
			PlatformName: platform.PlatformName,
			Years:        platform.Years,
		})
	}

	if err := u.astrologerRepo.Create(tx, astrologer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, apperr.AlreadyExists("Astrologer already exists with this email")
		}
		u.log.Warnf("Failed to create astrologer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAstrologerCreate, entity.JSON{
		"astrologer_id": astrologer.ID.String(),
		"email":         astrologer.Email,
	})

	return converter.AstrologerToResponse(astrologer), nil
}

func (u *astrologerUsecase) UpdateAstrologer(ctx context.Context, id uuid.UUID, req *dto.UpdateAstrologerRequest) (*dto.AstrologerResponse, error) {
	actor, err := authorize(ctx, guard.OpUpdateAstrologer, u.auditService)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	astrologer, err := u.astrologerRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find astrologer: %+v", err)
		return nil, err
	}
	if astrologer == nil {
		return nil, apperr.NotFound("Astrologer not found")
	}

	if req.Name != "" {
		astrologer.Name = req.Name
	}
	if req.ContactNo != "" {
		astrologer.ContactNo = req.ContactNo
	}
	if req.Gender != "" {
		astrologer.Gender = req.Gender
	}
	if req.Languages != nil {
		astrologer.Languages = req.Languages
	}
	if req.Skills != nil {
		astrologer.Skills = req.Skills
	}
	if req.Experience != nil {
		astrologer.Experience = *req.Experience
	}
	if req.Price != nil {
		astrologer.Price = *req.Price
	}
	if req.Rating != nil {
		astrologer.Rating = *req.Rating
	}
	if req.About != "" {
		astrologer.About = req.About
	}
	if req.ProfilePic != "" {
		astrologer.ProfilePic = req.ProfilePic
	}
	if req.AdminRemarks != "" {
		astrologer.AdminRemarks = req.AdminRemarks
	}

	if err := u.astrologerRepo.Update(tx, astrologer); err != nil {
		u.log.Warnf("Failed to update astrologer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAstrologerUpdate, entity.JSON{
		"astrologer_id": astrologer.ID.String(),
	})

	return converter.AstrologerToResponse(astrologer), nil
}

func (u *astrologerUsecase) DeleteAstrologer(ctx context.Context, id uuid.UUID) error {
	actor, err := authorize(ctx, guard.OpDeleteAstrologer, u.auditService)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.astrologerRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete astrologer: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return apperr.NotFound("Astrologer not found")
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(&actor.AdminID, entity.AuditActionAstrologerDelete, entity.JSON{
		"astrologer_id": id.String(),
	})

	return nil
}

func (u *astrologerUsecase) GetAstrologer(ctx context.Context, id uuid.UUID) (*dto.AstrologerResponse, error) {
	if _, err := authorize(ctx, guard.OpGetAstrologer, u.auditService); err != nil {
		return nil, err
	}

	astrologer, err := u.astrologerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find astrologer: %+v", err)
		return nil, err
	}
	if astrologer == nil {
		return nil, apperr.NotFound("Astrologer not found")
	}

	return converter.AstrologerToResponse(astrologer), nil
}

func (u *astrologerUsecase) ListAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error) {
	return u.list(ctx, query, nil)
}

func (u *astrologerUsecase) ListPendingAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error) {
	return u.list(ctx, query, []entity.ApprovalStatus{
		entity.ApprovalStatusPending,
		entity.ApprovalStatusInterview,
		entity.ApprovalStatusDocumentVerification,
	})
}

func (u *astrologerUsecase) ListApprovedAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error) {
	return u.list(ctx, query, []entity.ApprovalStatus{entity.ApprovalStatusApproved})
}

func (u *astrologerUsecase) ListRejectedAstrologers(ctx context.Context, query *dto.ListAstrologersQuery) (*dto.AstrologerListResponse, error) {
	return u.list(ctx, query, []entity.ApprovalStatus{entity.ApprovalStatusRejected})
}

func (u *astrologerUsecase) list(ctx context.Context, query *dto.ListAstrologersQuery, statuses []entity.ApprovalStatus) (*dto.AstrologerListResponse, error) {
	if _, err := authorize(ctx, guard.OpListAstrologers, u.auditService); err != nil {
		return nil, err
	}

	params := pagination.Normalize(query.Page, query.Limit)
	filter := repository.AstrologerSearchFilter{
		Query:     query.Search,
		Statuses:  statuses,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Params:    params,
	}

	astrologers, total, err := u.astrologerRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search astrologers: %+v", err)
		return nil, err
	}

	return &dto.AstrologerListResponse{
		Data:        converter.AstrologersToResponses(astrologers),
		TotalCount:  total,
		CurrentPage: params.Page,
		TotalPages:  pagination.TotalPages(total, params.Limit),
	}, nil
}
