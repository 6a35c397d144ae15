// File: internal/service/user_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/domain/repository"
)

// UserService exposes user record management on top of the credential
// store. Responses rely on the model's json tags to strip the password hash
// and two-factor secret.
type UserService struct {
	users     repository.UserRepository
	passwords interfaces.PasswordService
	logger    *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, passwords interfaces.PasswordService, logger *zap.Logger) *UserService {
	return &UserService{users: users, passwords: passwords, logger: logger}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, domainErrors.ErrInternal
	}
	return users, nil
}

// Get returns the user with the given id, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies a partial update. A new password is re-hashed before it is
// persisted.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	update := models.UserUpdate{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if req.Password != nil {
		hash, err := s.passwords.Hash(*req.Password)
		if err != nil {
			s.logger.Error("Failed to hash password during update", zap.Error(err), zap.String("user_id", id.String()))
			return nil, domainErrors.ErrInternal
		}
		update.PasswordHash = &hash
	}

	return s.users.Update(ctx, id, update)
}

// Delete removes the user, or fails with ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
