// File: internal/service/access_guard.go
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

// AuthLevel is the authentication level a protected operation requires.
type AuthLevel int

const (
	// AuthLevelFull requires an access token whose second factor, if
	// enabled, has been verified.
	AuthLevelFull AuthLevel = iota
	// AuthLevelTwoFAPending accepts the partial token issued after a
	// correct password while the second factor is outstanding. It also
	// accepts a full access token, so an already-authenticated user can
	// confirm a fresh enrollment through the same verification path.
	AuthLevelTwoFAPending
)

// AccessGuard validates inbound tokens against a required authentication
// level and resolves the authenticated user. It is stateless: two guards
// validating the same token concurrently always agree.
type AccessGuard struct {
	users  repository.UserRepository
	tokens interfaces.TokenService
	logger *zap.Logger
}

// NewAccessGuard creates a new AccessGuard.
func NewAccessGuard(users repository.UserRepository, tokens interfaces.TokenService, logger *zap.Logger) *AccessGuard {
	return &AccessGuard{users: users, tokens: tokens, logger: logger}
}

// Authenticate parses tokenString, checks it against the required level and
// returns the referenced user. Every failure mode is an unauthorized
// condition; ErrTwoFactorRequired is distinguishable so callers can tell
// the client to complete the second factor.
func (g *AccessGuard) Authenticate(ctx context.Context, tokenString string, level AuthLevel) (*models.User, error) {
	kinds := []models.TokenKind{models.TokenKindAccess}
	if level == AuthLevelTwoFAPending {
		kinds = []models.TokenKind{models.TokenKindTwoFAPending, models.TokenKindAccess}
	}

	var claims *models.Claims
	var err error
	for _, kind := range kinds {
		claims, err = g.tokens.Parse(tokenString, kind)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainErrors.ErrUnauthorized
	}

	user, err := g.users.FindByID(ctx, userID)
	if err != nil {
		if !domainErrors.IsNotFound(err) {
			g.logger.Error("Guard user lookup failed", zap.Error(err), zap.String("user_id", userID.String()))
		}
		return nil, domainErrors.ErrUnauthorized
	}

	if level == AuthLevelFull && claims.TwoFAEnabled &&
		(claims.TwoFAVerified == nil || !*claims.TwoFAVerified) {
		return nil, domainErrors.ErrTwoFactorRequired
	}

	return user, nil
}
