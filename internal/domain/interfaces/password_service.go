// File: internal/domain/interfaces/password_service.go
package interfaces

// PasswordService applies a salted one-way transform to plaintext passwords
// and verifies candidates against stored digests.
type PasswordService interface {
	Hash(plaintext string) (string, error)
	// Check reports whether plaintext matches digest. It never reveals which
	// part of a credential pair was wrong; callers collapse all failures
	// into a single invalid-credentials error.
	Check(plaintext, digest string) bool
}
