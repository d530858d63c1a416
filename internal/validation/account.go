// Package validation holds input validation shared by services and handlers.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 25

	MinPasswordLength = 8
	MaxPasswordLength = 128
	minPasswordDigits = 1
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.]*[a-zA-Z0-9_]$`)
	digitRegex    = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername validates username length and format.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLength {
		return fmt.Errorf("username must have at least %d characters", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username must not have more than %d characters", MaxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must start and end with letters, numbers or underscore but can contain periods")
	}
	return nil
}

// ValidateEmail validates email address format.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword validates password length and digit content.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must have at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must not have more than %d characters", MaxPasswordLength)
	}
	if len(digitRegex.FindAllString(password, -1)) < minPasswordDigits {
		return fmt.Errorf("password must contain at least %d digit", minPasswordDigits)
	}
	return nil
}
