// File: internal/service/mocks_test.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/overskilled/backend-movie-api/internal/domain/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error) {
	args := m.Called(ctx, phoneNumber)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, id, update)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Check(plaintext, digest string) bool {
	args := m.Called(plaintext, digest)
	return args.Bool(0)
}

type MockTOTPService struct {
	mock.Mock
}

func (m *MockTOTPService) GenerateSecret(accountName string) (string, string, error) {
	args := m.Called(accountName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTOTPService) ValidateCode(secret, code string) bool {
	args := m.Called(secret, code)
	return args.Bool(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(user *models.User, twoFAVerified bool) (string, error) {
	args := m.Called(user, twoFAVerified)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateTwoFAPendingToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Parse(tokenString string, kind models.TokenKind) (*models.Claims, error) {
	args := m.Called(tokenString, kind)
	if claims := args.Get(0); claims != nil {
		return claims.(*models.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockEventPublisher records published events for assertions.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, subject string, payload interface{}) error {
	args := m.Called(ctx, eventType, subject, payload)
	return args.Error(0)
}
