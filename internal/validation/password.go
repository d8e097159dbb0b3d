// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"unicode"
)

// ValidatePassword checks if a password meets the account creation policy:
// at least 8 characters and at least one uppercase letter. The policy is
// enforced at account creation only; updates bypass it.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	return nil
}

// ValidateNickname checks the optional display name length limit.
func ValidateNickname(nickname string) error {
	if len(nickname) > 20 {
		return fmt.Errorf("nickname must not exceed 20 characters")
	}
	return nil
}
