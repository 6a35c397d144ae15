// File: internal/domain/interfaces/token_service.go
package interfaces

import (
	"github.com/google/uuid"

	"github.com/overskilled/backend-movie-api/internal/domain/models"
)

// TokenService mints and parses the signed, self-contained tokens this
// service issues. The issuer itself is kind-agnostic beyond stamping and
// checking the token_type discriminant; callers decide which kind a given
// operation requires.
type TokenService interface {
	// GenerateAccessToken embeds the user's identity and two-factor state.
	// twoFAVerified is only reflected in the claims when the user has
	// two-factor enabled.
	GenerateAccessToken(user *models.User, twoFAVerified bool) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	GenerateTwoFAPendingToken(userID uuid.UUID) (string, error)
	// Parse verifies signature, expiry and kind. Failures map to
	// ErrInvalidSignature, ErrExpiredToken, ErrMalformedToken or
	// ErrInvalidToken.
	Parse(token string, kind models.TokenKind) (*models.Claims, error)
}
