// File: internal/infrastructure/security/totp_service.go
package security

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
)

// pquernaTOTPService implements interfaces.TOTPService using pquerna/otp.
type pquernaTOTPService struct {
	issuerName string
}

// NewTOTPService creates a TOTPService. issuerName is the label shown in
// authenticator apps (e.g. the application name).
func NewTOTPService(issuerName string) interfaces.TOTPService {
	if strings.TrimSpace(issuerName) == "" {
		issuerName = "MoviePlatform"
	}
	return &pquernaTOTPService{issuerName: issuerName}
}

func (s *pquernaTOTPService) GenerateSecret(accountName string) (string, string, error) {
	if strings.TrimSpace(accountName) == "" {
		return "", "", fmt.Errorf("accountName cannot be empty for TOTP secret generation")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuerName,
		AccountName: accountName,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
		SecretSize:  20, // 160 bits, base32-encoded
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// ValidateCode checks the submitted code against the secret for the current
// window and one adjacent window on either side. A malformed secret or code
// is simply an invalid code.
func (s *pquernaTOTPService) ValidateCode(secret, code string) bool {
	valid, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false
	}
	return valid
}

var _ interfaces.TOTPService = (*pquernaTOTPService)(nil)
