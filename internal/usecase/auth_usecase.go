package usecase

import (
	"context"
	"fmt"

	"astro-admin-api/internal/apperr"
	"astro-admin-api/internal/converter"
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/domain/repository"
	"astro-admin-api/internal/service"
	"astro-admin-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, adminID uuid.UUID, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	// IsTokenValid reports whether the token has not been revoked.
	IsTokenValid(ctx context.Context, adminID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminRepo    repository.AdminRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adminRepo repository.AdminRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func tokenKey(tokenType jwt.TokenType, adminID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, adminID.String(), tokenID)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := u.adminRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return nil, err
	}
	if admin == nil || admin.IsDeleted {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if admin.IsActive != nil && !*admin.IsActive {
		return nil, apperr.Unauthorized("Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(admin.ID, admin.Email, admin.Role.Name)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(admin.ID, admin.Email, admin.Role.Name)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, admin.ID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	u.auditService.Record(&admin.ID, entity.AuditActionAdminLogin, entity.JSON{
		"email": admin.Email,
	})

	return &dto.LoginResponse{
		Admin:        *converter.AdminToResponse(admin),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, adminID uuid.UUID, accessTokenID, refreshTokenID string) error {
	keys := []string{
		tokenKey(jwt.AccessToken, adminID, accessTokenID),
	}
	if refreshTokenID != "" {
		keys = append(keys, tokenKey(jwt.RefreshToken, adminID, refreshTokenID))
	}

	if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}

	u.auditService.Record(&adminID, entity.AuditActionAdminLogout, nil)

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	refreshKey := tokenKey(jwt.RefreshToken, claims.AdminID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, apperr.Unauthorized("Token has been revoked")
	}

	// Rotate: the old refresh token is single-use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.AdminID, claims.Email, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.AdminID, claims.Email, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, claims.AdminID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) IsTokenValid(ctx context.Context, adminID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := u.redisClient.Exists(ctx, tokenKey(tokenType, adminID, tokenID)).Result()
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (u *authUsecase) storeTokens(ctx context.Context, adminID uuid.UUID, accessTokenID, refreshTokenID string) error {
	accessKey := tokenKey(jwt.AccessToken, adminID, accessTokenID)
	refreshKey := tokenKey(jwt.RefreshToken, adminID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return err
	}
	return nil
}
