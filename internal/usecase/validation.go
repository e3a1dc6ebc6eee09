package usecase

import (
	"strings"

	domainErrors "github.com/bobscoffee/loyalty/internal/domain/errors"
)

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 8

// ValidateRegistration checks the shape of registration input.
func ValidateRegistration(username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return domainErrors.ErrValidation
	}
	if len(password) < MinPasswordLength {
		return domainErrors.ErrValidation
	}
	if !strings.Contains(email, "@") {
		return domainErrors.ErrValidation
	}
	return nil
}

// ValidateScanAmount checks the number of units applied by one scan.
func ValidateScanAmount(amount int) error {
	if amount < 1 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
