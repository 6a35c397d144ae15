// File: internal/domain/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an identity and credential record, mapping to the "users"
// table. The password hash and two-factor secret never leave the process:
// both carry a `json:"-"` tag so no handler can serialize them by accident.
type User struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Username         string     `json:"username" db:"username"`
	Email            string     `json:"email" db:"email"`
	PhoneNumber      string     `json:"phoneNumber" db:"phone_number"`
	PasswordHash     string     `json:"-" db:"password_hash"`
	TwoFactorEnabled bool       `json:"twoFAEnabled" db:"two_factor_enabled"`
	TwoFactorSecret  *string    `json:"-" db:"two_factor_secret"` // Nullable, set on enrollment
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty" db:"updated_at"` // Nullable
}

// UserUpdate is a partial field set applied by UserRepository.Update.
// Nil fields are left untouched.
type UserUpdate struct {
	Username         *string
	Email            *string
	PhoneNumber      *string
	PasswordHash     *string
	TwoFactorEnabled *bool
	TwoFactorSecret  *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.PasswordHash == nil && u.TwoFactorEnabled == nil && u.TwoFactorSecret == nil
}
