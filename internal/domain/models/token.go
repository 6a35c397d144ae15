// File: internal/domain/models/token.go
package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind is the explicit discriminant carried in every token's
// `token_type` claim. Parsing validates the kind, so an access token can
// never be replayed where a pending token is expected and vice versa.
type TokenKind string

const (
	// TokenKindAccess grants access to protected resources.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is exchanged for a fresh access token.
	TokenKindRefresh TokenKind = "refresh"
	// TokenKindTwoFAPending proves password verification only; issued when
	// a second factor is still outstanding.
	TokenKindTwoFAPending TokenKind = "twofa_pending"
)

// Claims is the claim set bound to every token this service mints.
// TwoFAVerified is a pointer so the claim is present (and false) only when
// two-factor is enabled for the subject, and absent otherwise.
type Claims struct {
	jwt.RegisteredClaims
	TokenType     string `json:"token_type"`
	Email         string `json:"email,omitempty"`
	TwoFAEnabled  bool   `json:"two_fa_enabled,omitempty"`
	TwoFAVerified *bool  `json:"two_fa_verified,omitempty"`
}

// TokenPair is a full-authentication grant.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is the outcome of a successful password check. Exactly one of
// the two shapes is populated: a pending temp token when a second factor is
// outstanding, or a full token pair otherwise.
type LoginResult struct {
	TwoFARequired bool
	TempToken     string
	AccessToken   string
	RefreshToken  string
	UserID        uuid.UUID
}

// TwoFactorSecret is the enrollment artifact returned to the client: the
// base32 secret plus a provisioning URI suitable for a QR code.
type TwoFactorSecret struct {
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauthUrl"`
}
