// File: internal/domain/interfaces/totp_service.go
package interfaces

// TOTPService generates and verifies time-based one-time-password secrets.
type TOTPService interface {
	// GenerateSecret returns a fresh base32-encoded secret and a
	// provisioning URI embedding the account name.
	GenerateSecret(accountName string) (secret string, otpauthURL string, err error)
	// ValidateCode reports whether code is valid for secret in the current
	// time window (with clock-skew tolerance). Malformed input yields false,
	// never an error.
	ValidateCode(secret, code string) bool
}
