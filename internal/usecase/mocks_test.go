package usecase

import (
	"context"
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockBookingSessionRepository stubs the Redis-backed session store
type MockBookingSessionRepository struct {
	mock.Mock
}

func (m *MockBookingSessionRepository) Save(ctx context.Context, session *entity.BookingSession, ttl time.Duration) error {
	return m.Called(ctx, session, ttl).Error(0)
}

func (m *MockBookingSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*entity.BookingSession)
	return session, args.Error(1)
}

func (m *MockBookingSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, sessionID uuid.UUID, notice entity.Notice) {
	m.Called(ctx, sessionID, notice)
}

type MockBookingSubmitter struct {
	mock.Mock
}

func (m *MockBookingSubmitter) Submit(ctx context.Context, req *entity.BookingRequest) (*entity.BookingConfirmation, error) {
	args := m.Called(ctx, req)
	confirmation, _ := args.Get(0).(*entity.BookingConfirmation)
	return confirmation, args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Store(ctx context.Context, key string, ttl time.Duration) error {
	return m.Called(ctx, key, ttl).Error(0)
}

func (m *MockTokenRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, tx, actor, action, entityName, entityID, newValue).Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, tx, actor, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, actor string, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, tx, actor, action, entityName, entityID, oldValue).Error(0)
}

func (m *MockAuditService) LogEvent(ctx context.Context, actor string, action string, details entity.JSON) error {
	return m.Called(ctx, actor, action, details).Error(0)
}
