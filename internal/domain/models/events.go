// File: internal/domain/models/events.go
package models

// Event types published to the auth events topic.
const (
	AuthUserRegisteredV1 = "auth.user.registered.v1"
	AuthUserLoginV1      = "auth.user.login.v1"
	AuthUser2FAEnabledV1 = "auth.user.2fa_enabled.v1"
)

// UserRegisteredPayload is the data section of auth.user.registered events.
type UserRegisteredPayload struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UserLoginPayload is the data section of auth.user.login events.
type UserLoginPayload struct {
	UserID        string `json:"user_id"`
	TwoFARequired bool   `json:"two_fa_required"`
}

// User2FAEnabledPayload is the data section of auth.user.2fa_enabled events.
type User2FAEnabledPayload struct {
	UserID string `json:"user_id"`
}
