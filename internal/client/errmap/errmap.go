// Package errmap turns any error from a login or register attempt into one
// English sentence suitable for showing to the user. Message is total: it
// never fails and never returns an empty string.
package errmap

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/sellhub/internal/client/client"
	"github.com/dmitrijs2005/sellhub/internal/client/models"
)

type Context string

const (
	Login    Context = "login"
	Register Context = "register"
)

const (
	MsgNetwork         = "Unable to connect to the server. Please check your internet connection."
	MsgTimeout         = "Request timed out. Please try again."
	MsgBadCredentials  = "Invalid username or password. Please try again."
	MsgAccountExists   = "An account with this username or email already exists."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgWeakPassword    = "Password is too weak. Please use a stronger password."
	MsgUserNotFound    = "User not found. Please check your credentials."
	MsgAccountLocked   = "Your account has been locked. Please contact support."
	MsgInvalidUsername = "Username contains invalid characters."
	MsgPasswordsDiffer = "Passwords do not match. Please try again."
	MsgPasswordShort   = "Password must be at least 6 characters long."

	MsgStatus400Register = "Invalid registration data. Please check all fields."
	MsgStatus400Login    = "Invalid login credentials. Please try again."
	MsgStatus401         = "Invalid username or password."
	MsgStatus403         = "Access denied. Please check your credentials."
	MsgStatus404         = "User not found."
	MsgStatus409         = "An account with this username or email already exists."
	MsgStatus422         = "Validation failed. Please check your input."
	MsgStatus429         = "Too many attempts. Please try again later."
	MsgStatus500         = "Server error. Please try again later."
	MsgStatus503         = "Service temporarily unavailable. Please try again later."

	MsgLoginFailed    = "Login failed. Please check your credentials and try again."
	MsgRegisterFailed = "Registration failed. Please try again."
)

// Polish messages the backend is known to send, matched case-insensitively.
var foreignPhrases = []struct {
	phrases []string
	msg     string
}{
	{[]string{"nieprawidłowa nazwa użytkownika lub hasło", "nieprawidłowe dane", "błędne dane logowania"}, MsgBadCredentials},
	{[]string{"użytkownik już istnieje", "email już istnieje", "konto już istnieje", "nazwie już istnieje"}, MsgAccountExists},
	{[]string{"nieprawidłowy email", "błędny adres email"}, MsgInvalidEmail},
	{[]string{"hasło zbyt słabe", "słabe hasło"}, MsgWeakPassword},
}

// Message maps err to a user-facing sentence for the given form context.
func Message(err error, c Context) string {
	if err == nil {
		return fallback(c)
	}

	switch {
	case errors.Is(err, models.ErrPasswordMismatch):
		return MsgPasswordsDiffer
	case errors.Is(err, models.ErrPasswordTooShort):
		return MsgPasswordShort
	}

	var apiErr *client.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case client.KindNetwork:
			if apiErr.Timeout() {
				return MsgTimeout
			}
			return MsgNetwork
		case client.KindHTTP:
			msg := strings.ToLower(apiErr.Message)
			if s, ok := foreign(msg); ok {
				return s
			}
			if s, ok := byStatus(apiErr.Status, c); ok {
				return s
			}
			if s, ok := byContext(msg, c); ok {
				return s
			}
			return fallback(c)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "network") || strings.Contains(msg, "fetch"):
		return MsgNetwork
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return MsgTimeout
	}
	if s, ok := foreign(msg); ok {
		return s
	}
	if s, ok := byContext(msg, c); ok {
		return s
	}
	return fallback(c)
}

func foreign(msg string) (string, bool) {
	for _, f := range foreignPhrases {
		for _, p := range f.phrases {
			if strings.Contains(msg, p) {
				return f.msg, true
			}
		}
	}
	return "", false
}

func byStatus(status int, c Context) (string, bool) {
	switch status {
	case 400:
		if c == Register {
			return MsgStatus400Register, true
		}
		return MsgStatus400Login, true
	case 401:
		return MsgStatus401, true
	case 403:
		return MsgStatus403, true
	case 404:
		return MsgStatus404, true
	case 409:
		return MsgStatus409, true
	case 422:
		return MsgStatus422, true
	case 429:
		return MsgStatus429, true
	case 500:
		return MsgStatus500, true
	case 503:
		return MsgStatus503, true
	}
	return "", false
}

func byContext(msg string, c Context) (string, bool) {
	switch c {
	case Login:
		switch {
		case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "invalid credentials"):
			return MsgBadCredentials, true
		case strings.Contains(msg, "not found"):
			return MsgUserNotFound, true
		case strings.Contains(msg, "locked"):
			return MsgAccountLocked, true
		}
	case Register:
		switch {
		case strings.Contains(msg, "already exists"), strings.Contains(msg, "duplicate"):
			return MsgAccountExists, true
		case strings.Contains(msg, "invalid email"):
			return MsgInvalidEmail, true
		case strings.Contains(msg, "password") && strings.Contains(msg, "weak"):
			return MsgWeakPassword, true
		case strings.Contains(msg, "username") && strings.Contains(msg, "invalid"):
			return MsgInvalidUsername, true
		}
	}
	return "", false
}

func fallback(c Context) string {
	if c == Login {
		return MsgLoginFailed
	}
	return MsgRegisterFailed
}
