// File: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
)

func registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:       "alice@example.com",
		Username:    "alice",
		PhoneNumber: "+15550001111",
		Password:    "password123",
	}
}

func TestAuthService_Register(t *testing.T) {
	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	events := new(MockEventPublisher)
	svc := NewAuthService(users, passwords, nil, events, zap.NewNop())

	req := registerRequest()
	users.On("FindByEmail", mock.Anything, req.Email).Return(nil, domainErrors.ErrUserNotFound)
	passwords.On("Hash", req.Password).Return("$2a$10$digest", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == req.Email &&
			u.Username == req.Username &&
			u.PasswordHash == "$2a$10$digest" &&
			!u.TwoFactorEnabled &&
			u.ID != uuid.Nil
	})).Return(nil)
	events.On("Publish", mock.Anything, models.AuthUserRegisteredV1, mock.Anything, mock.Anything).Return(nil)

	userID, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	users.AssertExpectations(t)
	passwords.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, new(MockPasswordService), nil, nil, zap.NewNop())

	req := registerRequest()
	users.On("FindByEmail", mock.Anything, req.Email).Return(&models.User{ID: uuid.New(), Email: req.Email}, nil)

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domainErrors.ErrEmailExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	svc := NewAuthService(users, passwords, nil, nil, zap.NewNop())

	req := registerRequest()
	users.On("FindByEmail", mock.Anything, req.Email).Return(nil, domainErrors.ErrUserNotFound)
	passwords.On("Hash", req.Password).Return("$2a$10$digest", nil)
	users.On("Create", mock.Anything, mock.Anything).Return(domainErrors.ErrEmailExists)

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domainErrors.ErrEmailExists)
}

func TestAuthService_LoginByEmail(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$digest",
	}

	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	tokens := new(MockTokenService)
	svc := NewAuthService(users, passwords, tokens, nil, zap.NewNop())

	users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	passwords.On("Check", "password123", user.PasswordHash).Return(true)
	tokens.On("GenerateAccessToken", user, false).Return("access-token", nil)
	tokens.On("GenerateRefreshToken", user.ID).Return("refresh-token", nil)

	result, err := svc.LoginByEmail(context.Background(), user.Email, "password123")
	require.NoError(t, err)

	assert.False(t, result.TwoFARequired)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Empty(t, result.TempToken)
	assert.Equal(t, user.ID, result.UserID)
}

func TestAuthService_LoginByEmail_TwoFactorPending(t *testing.T) {
	user := &models.User{
		ID:               uuid.New(),
		Email:            "bob@example.com",
		PasswordHash:     "$2a$10$digest",
		TwoFactorEnabled: true,
	}

	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	tokens := new(MockTokenService)
	svc := NewAuthService(users, passwords, tokens, nil, zap.NewNop())

	users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	passwords.On("Check", "password123", user.PasswordHash).Return(true)
	tokens.On("GenerateTwoFAPendingToken", user.ID).Return("temp-token", nil)

	result, err := svc.LoginByEmail(context.Background(), user.Email, "password123")
	require.NoError(t, err)

	assert.True(t, result.TwoFARequired)
	assert.Equal(t, "temp-token", result.TempToken)
	assert.Empty(t, result.AccessToken)
	assert.Empty(t, result.RefreshToken)
	tokens.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestAuthService_LoginByEmail_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, new(MockPasswordService), nil, nil, zap.NewNop())

		users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, domainErrors.ErrUserNotFound)

		_, err := svc.LoginByEmail(context.Background(), "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "$2a$10$digest"}
		users := new(MockUserRepository)
		passwords := new(MockPasswordService)
		svc := NewAuthService(users, passwords, nil, nil, zap.NewNop())

		users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		passwords.On("Check", "wrong", user.PasswordHash).Return(false)

		_, err := svc.LoginByEmail(context.Background(), user.Email, "wrong")
		assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	})
}

func TestAuthService_LoginByPhone(t *testing.T) {
	user := &models.User{
		ID:           uuid.New(),
		Email:        "carol@example.com",
		PhoneNumber:  "+15550002222",
		PasswordHash: "$2a$10$digest",
	}

	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	tokens := new(MockTokenService)
	svc := NewAuthService(users, passwords, tokens, nil, zap.NewNop())

	users.On("FindByPhone", mock.Anything, user.PhoneNumber).Return(user, nil)
	passwords.On("Check", "password123", user.PasswordHash).Return(true)
	tokens.On("GenerateAccessToken", user, false).Return("access-token", nil)
	tokens.On("GenerateRefreshToken", user.ID).Return("refresh-token", nil)

	result, err := svc.LoginByPhone(context.Background(), user.PhoneNumber, "password123")
	require.NoError(t, err)
	assert.Equal(t, "access-token", result.AccessToken)
}

func TestAuthService_Login_PublishFailureIsSoft(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "dave@example.com", PasswordHash: "$2a$10$digest"}

	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	tokens := new(MockTokenService)
	events := new(MockEventPublisher)
	svc := NewAuthService(users, passwords, tokens, events, zap.NewNop())

	users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	passwords.On("Check", "password123", user.PasswordHash).Return(true)
	tokens.On("GenerateAccessToken", user, false).Return("access-token", nil)
	tokens.On("GenerateRefreshToken", user.ID).Return("refresh-token", nil)
	events.On("Publish", mock.Anything, models.AuthUserLoginV1, mock.Anything, mock.Anything).
		Return(assert.AnError)

	result, err := svc.LoginByEmail(context.Background(), user.Email, "password123")
	require.NoError(t, err, "a failed event publish must not fail the login")
	assert.Equal(t, "access-token", result.AccessToken)
}
