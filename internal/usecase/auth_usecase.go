package usecase

import (
	"context"
	"errors"
	"strings"

	"mediconnect/config"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"
	"mediconnect/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, email, accessTokenID string, req *dto.LogoutRequest) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentAdmin(ctx context.Context, email string) (*dto.AdminResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	admin        config.AdminConfig
	tokenRepo    repository.TokenRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	admin config.AdminConfig,
	tokenRepo repository.TokenRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		admin:        admin,
		tokenRepo:    tokenRepo,
		auditService: auditService,
		jwtService:   jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if u.admin.Email == "" || u.admin.PasswordHash == "" {
		u.log.Warn("Admin login attempted but no admin account is configured")
		return nil, ErrInvalidCredentials
	}

	if !strings.EqualFold(req.Email, u.admin.Email) {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, u.admin.Email)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, u.admin.Email, entity.AuditActionAdminLogin, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, email, accessTokenID string, req *dto.LogoutRequest) error {
	keys := []string{jwt.AccessTokenKey(email, accessTokenID)}

	// A refresh token is optional; an invalid one is ignored
	if req != nil && req.RefreshToken != "" {
		if claims, err := u.jwtService.ValidateToken(req.RefreshToken); err == nil && claims.TokenType == jwt.RefreshToken {
			keys = append(keys, jwt.RefreshTokenKey(claims.Email, claims.TokenID))
		}
	}

	if err := u.tokenRepo.Delete(ctx, keys...); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}

	if err := u.auditService.LogEvent(ctx, email, entity.AuditActionAdminLogout, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := jwt.RefreshTokenKey(claims.Email, claims.TokenID)
	exists, err := u.tokenRepo.Exists(ctx, refreshKey)
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Refresh tokens are single use
	if err := u.tokenRepo.Delete(ctx, refreshKey); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.Email)
}

func (u *authUsecase) GetCurrentAdmin(ctx context.Context, email string) (*dto.AdminResponse, error) {
	if !strings.EqualFold(email, u.admin.Email) {
		return nil, ErrInvalidToken
	}

	return &dto.AdminResponse{
		Email: u.admin.Email,
		Role:  jwt.RoleAdmin,
	}, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(email, jwt.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(email, jwt.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, jwt.AccessTokenKey(email, accessTokenID), u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, jwt.RefreshTokenKey(email, refreshTokenID), u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
