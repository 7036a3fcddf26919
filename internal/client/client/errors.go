package client

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

const (
	networkErrorMessage = "Network error"
	reloginMessage      = "Unauthorized - Please login again"
	fetchUserMessage    = "Failed to fetch user"
)

type Kind int

const (
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork Kind = iota + 1
	// KindHTTP means the server answered with a non-success status.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error shape produced by HTTPClient.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: networkErrorMessage, Err: err}
}

func httpError(status int, message string) *Error {
	return &Error{Kind: KindHTTP, Status: status, Message: message}
}

func (e *Error) Error() string {
	if e.Kind == KindNetwork && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindNetwork
	case ErrUnauthorized:
		return e.Kind == KindHTTP && (e.Status == 401 || e.Status == 403)
	}
	return false
}

// Timeout reports whether a network failure was caused by a deadline.
func (e *Error) Timeout() bool {
	if e.Kind != KindNetwork || e.Err == nil {
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}
