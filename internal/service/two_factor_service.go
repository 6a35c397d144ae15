// File: internal/service/two_factor_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/domain/repository"
)

// TwoFactorService handles TOTP enrollment and verification.
type TwoFactorService struct {
	users  repository.UserRepository
	totp   interfaces.TOTPService
	tokens interfaces.TokenService
	events interfaces.EventPublisher
	logger *zap.Logger
}

// NewTwoFactorService creates a new TwoFactorService.
func NewTwoFactorService(
	users repository.UserRepository,
	totp interfaces.TOTPService,
	tokens interfaces.TokenService,
	events interfaces.EventPublisher,
	logger *zap.Logger,
) *TwoFactorService {
	return &TwoFactorService{
		users:  users,
		totp:   totp,
		tokens: tokens,
		events: events,
		logger: logger,
	}
}

// GenerateSecret enrolls the user: it generates a fresh TOTP secret,
// persists it on the user record (overwriting any prior secret) and returns
// the secret with its provisioning URI. Enrollment alone does not enable
// two-factor; the flag is set by the first successful verification.
func (s *TwoFactorService) GenerateSecret(ctx context.Context, userID uuid.UUID) (*models.TwoFactorSecret, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	secret, otpauthURL, err := s.totp.GenerateSecret(user.Email)
	if err != nil {
		s.logger.Error("Failed to generate TOTP secret",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, domainErrors.ErrInternal
	}

	if _, err := s.users.Update(ctx, userID, models.UserUpdate{TwoFactorSecret: &secret}); err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("Failed to persist TOTP secret",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, domainErrors.ErrInternal
	}

	return &models.TwoFactorSecret{Secret: secret, OtpauthURL: otpauthURL}, nil
}

// VerifyCode checks the submitted code against the user's stored secret. On
// success it mints a full token pair; the access token carries
// two_fa_verified = true, which is the only record of the satisfied second
// factor. The first successful verification also flips the enabled flag,
// completing enrollment.
func (s *TwoFactorService) VerifyCode(ctx context.Context, userID uuid.UUID, code string) (*models.TokenPair, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.TwoFactorSecret == nil || !s.totp.ValidateCode(*user.TwoFactorSecret, code) {
		return nil, domainErrors.ErrInvalid2FACode
	}

	if !user.TwoFactorEnabled {
		enabled := true
		updated, err := s.users.Update(ctx, userID, models.UserUpdate{TwoFactorEnabled: &enabled})
		if err != nil {
			s.logger.Error("Failed to enable two-factor",
				zap.Error(err), zap.String("user_id", userID.String()))
			return nil, domainErrors.ErrInternal
		}
		user = updated

		s.publish(ctx, models.AuthUser2FAEnabledV1, userID.String(), models.User2FAEnabledPayload{
			UserID: userID.String(),
		})
		s.logger.Info("Two-factor enrollment confirmed", zap.String("user_id", userID.String()))
	}

	accessToken, err := s.tokens.GenerateAccessToken(user, true)
	if err != nil {
		return nil, fmt.Errorf("failed to mint access token: %w", domainErrors.ErrInternal)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mint refresh token: %w", domainErrors.ErrInternal)
	}

	return &models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *TwoFactorService) publish(ctx context.Context, eventType, subject string, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, subject, payload); err != nil {
		s.logger.Warn("Failed to publish auth event",
			zap.Error(err), zap.String("event_type", eventType))
	}
}
