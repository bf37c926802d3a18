package usecase

import (
	"context"
	"testing"
	"time"

	"mediconnect/config"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminEmail = "admin@mediconnect.test"

type authFixture struct {
	usecase    AuthUsecase
	tokenRepo  *MockTokenRepository
	audit      *MockAuditService
	jwtService *jwt.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	f := &authFixture{
		tokenRepo: new(MockTokenRepository),
		audit:     new(MockAuditService),
		jwtService: jwt.NewJWTService(config.JWTConfig{
			Secret:        "auth-test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: time.Hour,
		}),
	}
	f.usecase = NewAuthUsecase(
		newTestLogger(),
		config.AdminConfig{Email: testAdminEmail, PasswordHash: string(hash)},
		f.tokenRepo,
		f.audit,
		f.jwtService,
	)
	return f
}

func TestAuthUsecase_Login(t *testing.T) {
	f := newAuthFixture(t)
	f.tokenRepo.On("Store", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > 0
	}), mock.AnythingOfType("time.Duration")).Return(nil)
	f.audit.On("LogEvent", mock.Anything, testAdminEmail, entity.AuditActionAdminLogin, entity.JSON(nil)).Return(nil)

	tokens, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "Admin@MediConnect.test", Password: "s3cret-pass"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	claims, err := f.jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)

	f.tokenRepo.AssertCalled(t, "Store", mock.Anything, jwt.AccessTokenKey(testAdminEmail, claims.TokenID), 15*time.Minute)
	f.tokenRepo.AssertNumberOfCalls(t, "Store", 2)
	f.audit.AssertExpectations(t)
}

func TestAuthUsecase_Login_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Email: testAdminEmail, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.Login(context.Background(), &dto.LoginRequest{Email: "someone@else.test", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	f.tokenRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthUsecase_RefreshToken_Revoked(t *testing.T) {
	f := newAuthFixture(t)
	refresh, refreshID, err := f.jwtService.GenerateRefreshToken(testAdminEmail, jwt.RoleAdmin)
	require.NoError(t, err)

	f.tokenRepo.On("Exists", mock.Anything, jwt.RefreshTokenKey(testAdminEmail, refreshID)).Return(false, nil)

	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refresh})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthUsecase_RefreshToken_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	access, _, err := f.jwtService.GenerateAccessToken(testAdminEmail, jwt.RoleAdmin)
	require.NoError(t, err)

	_, err = f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: access})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecase_RefreshToken_Rotates(t *testing.T) {
	f := newAuthFixture(t)
	refresh, refreshID, err := f.jwtService.GenerateRefreshToken(testAdminEmail, jwt.RoleAdmin)
	require.NoError(t, err)

	oldKey := jwt.RefreshTokenKey(testAdminEmail, refreshID)
	f.tokenRepo.On("Exists", mock.Anything, oldKey).Return(true, nil)
	f.tokenRepo.On("Delete", mock.Anything, []string{oldKey}).Return(nil)
	f.tokenRepo.On("Store", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(nil)

	tokens, err := f.usecase.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refresh})
	require.NoError(t, err)
	assert.NotEqual(t, refresh, tokens.RefreshToken)
	f.tokenRepo.AssertExpectations(t)
}

func TestAuthUsecase_Logout(t *testing.T) {
	f := newAuthFixture(t)
	refresh, refreshID, err := f.jwtService.GenerateRefreshToken(testAdminEmail, jwt.RoleAdmin)
	require.NoError(t, err)

	f.tokenRepo.On("Delete", mock.Anything, []string{
		jwt.AccessTokenKey(testAdminEmail, "access-id"),
		jwt.RefreshTokenKey(testAdminEmail, refreshID),
	}).Return(nil)
	f.audit.On("LogEvent", mock.Anything, testAdminEmail, entity.AuditActionAdminLogout, entity.JSON(nil)).Return(nil)

	err = f.usecase.Logout(context.Background(), testAdminEmail, "access-id", &dto.LogoutRequest{RefreshToken: refresh})
	require.NoError(t, err)
	f.tokenRepo.AssertExpectations(t)
}
