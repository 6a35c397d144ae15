// File: internal/service/user_service_test.go
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

func TestUserService_List(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, new(MockPasswordService), zap.NewNop())

	expected := []models.User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}
	users.On("FindAll", mock.Anything).Return(expected, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestUserService_List_RepositoryFailure(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, new(MockPasswordService), zap.NewNop())

	users.On("FindAll", mock.Anything).Return(nil, assert.AnError)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domainErrors.ErrInternal)
}

func TestUserService_Get_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, new(MockPasswordService), zap.NewNop())

	id := uuid.New()
	users.On("FindByID", mock.Anything, id).Return(nil, domainErrors.ErrUserNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	svc := NewUserService(users, passwords, zap.NewNop())

	id := uuid.New()
	newPassword := "new-password-123"
	newUsername := "alice2"

	passwords.On("Hash", newPassword).Return("$2a$10$newdigest", nil)
	users.On("Update", mock.Anything, id, mock.MatchedBy(func(u models.UserUpdate) bool {
		return u.Username != nil && *u.Username == newUsername &&
			u.PasswordHash != nil && *u.PasswordHash == "$2a$10$newdigest"
	})).Return(&models.User{ID: id, Username: newUsername}, nil)

	updated, err := svc.Update(context.Background(), id, models.UpdateUserRequest{
		Username: &newUsername,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, newUsername, updated.Username)
}

func TestUserService_Update_WithoutPassword(t *testing.T) {
	users := new(MockUserRepository)
	passwords := new(MockPasswordService)
	svc := NewUserService(users, passwords, zap.NewNop())

	id := uuid.New()
	email := "new@example.com"

	users.On("Update", mock.Anything, id, mock.MatchedBy(func(u models.UserUpdate) bool {
		return u.Email != nil && *u.Email == email && u.PasswordHash == nil
	})).Return(&models.User{ID: id, Email: email}, nil)

	_, err := svc.Update(context.Background(), id, models.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	passwords.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users, new(MockPasswordService), zap.NewNop())

	id := uuid.New()
	users.On("Delete", mock.Anything, id).Return(domainErrors.ErrUserNotFound)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, domainErrors.ErrUserNotFound)
}
