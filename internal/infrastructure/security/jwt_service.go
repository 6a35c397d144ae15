// File: internal/infrastructure/security/jwt_service.go
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/overskilled/backend-movie-api/internal/config"
	domainErrors "github.com/overskilled/backend-movie-api/internal/domain/errors"
	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
	"github.com/overskilled/backend-movie-api/internal/domain/models"
)

// TokenManager mints and parses HS256-signed tokens. The signing secret is
// injected at construction so tests can run with distinct secrets.
type TokenManager struct {
	secret               []byte
	issuer               string
	accessTokenTTL       time.Duration
	refreshTokenTTL      time.Duration
	twoFAPendingTokenTTL time.Duration
}

// NewTokenManager creates a TokenManager from the JWT configuration.
func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt signing secret must not be empty")
	}
	return &TokenManager{
		secret:               []byte(cfg.Secret),
		issuer:               cfg.Issuer,
		accessTokenTTL:       cfg.AccessTokenTTL,
		refreshTokenTTL:      cfg.RefreshTokenTTL,
		twoFAPendingTokenTTL: cfg.TwoFAPendingTokenTTL,
	}, nil
}

// GenerateAccessToken mints a short-lived access token. The two-factor
// verified claim is present only when the user has two-factor enabled, so
// guards can distinguish "no second factor configured" from "second factor
// outstanding".
func (tm *TokenManager) GenerateAccessToken(user *models.User, twoFAVerified bool) (string, error) {
	claims := &models.Claims{
		RegisteredClaims: tm.registeredClaims(user.ID, tm.accessTokenTTL),
		TokenType:        string(models.TokenKindAccess),
		Email:            user.Email,
		TwoFAEnabled:     user.TwoFactorEnabled,
	}
	if user.TwoFactorEnabled {
		v := twoFAVerified
		claims.TwoFAVerified = &v
	}
	return tm.sign(claims)
}

// GenerateRefreshToken mints a long-lived refresh token carrying only the
// subject.
func (tm *TokenManager) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	claims := &models.Claims{
		RegisteredClaims: tm.registeredClaims(userID, tm.refreshTokenTTL),
		TokenType:        string(models.TokenKindRefresh),
	}
	return tm.sign(claims)
}

// GenerateTwoFAPendingToken mints the partial token issued after a correct
// password when a second factor is still outstanding.
func (tm *TokenManager) GenerateTwoFAPendingToken(userID uuid.UUID) (string, error) {
	claims := &models.Claims{
		RegisteredClaims: tm.registeredClaims(userID, tm.twoFAPendingTokenTTL),
		TokenType:        string(models.TokenKindTwoFAPending),
	}
	return tm.sign(claims)
}

// Parse verifies the signature and expiry of tokenString and checks that it
// carries the expected kind. Expiry and signature are the sole validity
// checks; there is no server-side revocation.
func (tm *TokenManager) Parse(tokenString string, kind models.TokenKind) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, tm.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainErrors.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domainErrors.ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domainErrors.ErrMalformedToken
		default:
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrInvalidToken, err)
		}
	}

	if !token.Valid {
		return nil, domainErrors.ErrInvalidToken
	}

	if claims.TokenType != string(kind) {
		return nil, fmt.Errorf("%w: expected %s token, got %s",
			domainErrors.ErrInvalidToken, kind, claims.TokenType)
	}

	return claims, nil
}

func (tm *TokenManager) registeredClaims(subject uuid.UUID, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   subject.String(),
		Issuer:    tm.issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (tm *TokenManager) sign(claims *models.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return signed, nil
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return tm.secret, nil
}

var _ interfaces.TokenService = (*TokenManager)(nil)
