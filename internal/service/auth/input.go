package auth

import (
	"fmt"
	"strings"

	"github.com/khitstore/khit-backend/internal/domain"
)

const minPasswordLen = 8

// RegisterInput holds parameters for the sign-up operation.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Normalize trims whitespace and lowercases the email.
func (i *RegisterInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Name = strings.TrimSpace(i.Name)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	if err := validateEmail(i.Email); err != nil {
		return err
	}
	if len(i.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if i.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}

// LoginInput holds parameters for the sign-in operation.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims whitespace and lowercases the email.
func (i *LoginInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	if err := validateEmail(i.Email); err != nil {
		return err
	}
	if i.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: email is malformed", domain.ErrValidation)
	}
	return nil
}
