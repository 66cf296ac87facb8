package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/leitner-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes  = 72
	maxEmailLength    = 254
	minUsernameLength = 2
	maxUsernameLength = 50
)

var emailValidate = validator.New()

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Normalize lower-cases the email and trims identifiers.
func (i *RegisterInput) Normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Username = strings.TrimSpace(i.Username)
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(errs, i.Email)

	switch n := utf8.RuneCountInString(i.Username); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case n < minUsernameLength || n > maxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 2-50 characters"})
	}

	errs = validatePassword(errs, "password", i.Password)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = validatePassword(errs, "new_password", i.NewPassword)
	if i.NewPassword != "" && i.NewPassword == i.CurrentPassword {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must differ from current password"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if err := emailValidate.Var(email, "email"); err != nil {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func validatePassword(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(password) < minPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "must be at least 8 characters"})
	case len(password) > maxPasswordBytes:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
