// File: internal/domain/models/requests.go
package models

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required,min=1,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=5,max=32"`
	Password    string `json:"password" binding:"required,min=8"`
}

// EmailLoginRequest is the email + password login payload.
type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PhoneLoginRequest is the phone + password login payload.
type PhoneLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// Generate2FARequest requests TOTP enrollment for a user.
type Generate2FARequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

// Verify2FARequest submits a 6-digit TOTP code.
type Verify2FARequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	Token  string `json:"token" binding:"required,len=6,numeric"`
}

// UpdateUserRequest is the partial user update payload. A present password
// is re-hashed before it is persisted.
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty" binding:"omitempty,min=1,max=255"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty" binding:"omitempty,min=5,max=32"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=8"`
}
