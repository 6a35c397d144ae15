// File: internal/domain/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/overskilled/backend-movie-api/internal/domain/models"
)

// UserRepository is the credential store contract. Lookups return
// domain errors (ErrUserNotFound) rather than driver errors; Create fails
// with ErrEmailExists when the email is already taken.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
