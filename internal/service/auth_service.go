// File: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/domain/repository"
)

// AuthService orchestrates registration and password-based login. Per login
// it decides whether to grant a full token pair or a partial token pending a
// second factor.
type AuthService struct {
	users     repository.UserRepository
	passwords interfaces.PasswordService
	tokens    interfaces.TokenService
	events    interfaces.EventPublisher
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users repository.UserRepository,
	passwords interfaces.PasswordService,
	tokens interfaces.TokenService,
	events interfaces.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		events:    events,
		logger:    logger,
	}
}

// Register creates a new user with two-factor disabled and returns the new
// identifier. A duplicate email fails with ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (uuid.UUID, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return uuid.Nil, domainErrors.ErrEmailExists
	}
	if !errors.Is(err, domainErrors.ErrUserNotFound) {
		return uuid.Nil, fmt.Errorf("registration lookup failed: %w", err)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.Error(err))
		return uuid.Nil, domainErrors.ErrInternal
	}

	user := &models.User{
		ID:               uuid.New(),
		Username:         req.Username,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		PasswordHash:     hash,
		TwoFactorEnabled: false,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique index can still fire on a concurrent registration.
		if errors.Is(err, domainErrors.ErrEmailExists) {
			return uuid.Nil, domainErrors.ErrEmailExists
		}
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return uuid.Nil, domainErrors.ErrInternal
	}

	s.publish(ctx, models.AuthUserRegisteredV1, user.ID.String(), models.UserRegisteredPayload{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
	})

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return user.ID, nil
}

// LoginByEmail authenticates with email + password. Unknown email and wrong
// password collapse into the same ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) LoginByEmail(ctx context.Context, email, password string) (*models.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	return s.checkPasswordAndRespond(ctx, user, err, password)
}

// LoginByPhone authenticates with phone number + password.
func (s *AuthService) LoginByPhone(ctx context.Context, phoneNumber, password string) (*models.LoginResult, error) {
	user, err := s.users.FindByPhone(ctx, phoneNumber)
	return s.checkPasswordAndRespond(ctx, user, err, password)
}

func (s *AuthService) checkPasswordAndRespond(ctx context.Context, user *models.User, lookupErr error, password string) (*models.LoginResult, error) {
	if lookupErr != nil {
		if errors.Is(lookupErr, domainErrors.ErrUserNotFound) {
			return nil, domainErrors.ErrInvalidCredentials
		}
		s.logger.Error("Login lookup failed", zap.Error(lookupErr))
		return nil, domainErrors.ErrInternal
	}

	if !s.passwords.Check(password, user.PasswordHash) {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return s.loginResponse(ctx, user)
}

// loginResponse is the shared step after a successful password check: a
// partial token when a second factor is outstanding, a full pair otherwise.
func (s *AuthService) loginResponse(ctx context.Context, user *models.User) (*models.LoginResult, error) {
	if user.TwoFactorEnabled {
		tempToken, err := s.tokens.GenerateTwoFAPendingToken(user.ID)
		if err != nil {
			s.logger.Error("Failed to mint pending token", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, domainErrors.ErrInternal
		}

		s.publish(ctx, models.AuthUserLoginV1, user.ID.String(), models.UserLoginPayload{
			UserID:        user.ID.String(),
			TwoFARequired: true,
		})

		return &models.LoginResult{
			TwoFARequired: true,
			TempToken:     tempToken,
			UserID:        user.ID,
		}, nil
	}

	accessToken, err := s.tokens.GenerateAccessToken(user, false)
	if err != nil {
		s.logger.Error("Failed to mint access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, domainErrors.ErrInternal
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		s.logger.Error("Failed to mint refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, domainErrors.ErrInternal
	}

	s.publish(ctx, models.AuthUserLoginV1, user.ID.String(), models.UserLoginPayload{
		UserID:        user.ID.String(),
		TwoFARequired: false,
	})

	return &models.LoginResult{
		TwoFARequired: false,
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		UserID:        user.ID,
	}, nil
}

func (s *AuthService) publish(ctx context.Context, eventType, subject string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, subject, payload); err != nil {
		s.logger.Warn("Failed to publish auth event",
			zap.Error(err), zap.String("event_type", eventType))
	}
}
