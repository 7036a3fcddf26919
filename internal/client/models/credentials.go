package models

import "errors"

// MinPasswordLength is the shortest password the register form accepts.
const MinPasswordLength = 6

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")
)

type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Validate runs the register form checks against the confirmation field.
// A mismatch is reported before a short password.
func (c RegisterCredentials) Validate(confirm string) error {
	if c.Password != confirm {
		return ErrPasswordMismatch
	}
	if len(c.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
