// File: internal/infrastructure/security/password_bcrypt.go
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
)

// bcryptCost is the fixed work factor. Raising it only affects newly hashed
// passwords; verification reads the cost out of the stored digest.
const bcryptCost = 10

type bcryptPasswordService struct{}

// NewBcryptPasswordService creates a PasswordService backed by bcrypt.
func NewBcryptPasswordService() interfaces.PasswordService {
	return &bcryptPasswordService{}
}

func (s *bcryptPasswordService) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

func (s *bcryptPasswordService) Check(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

var _ interfaces.PasswordService = (*bcryptPasswordService)(nil)
