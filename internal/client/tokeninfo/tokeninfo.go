// Package tokeninfo reads display-only details out of the bearer token.
//
// Claims are parsed WITHOUT signature verification: the client has no key and
// the server remains the only authority on whether a token is valid. Nothing
// here may be used for an authorization decision.
package tokeninfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Parse extracts the registered claims from token.
func Parse(token string) (Info, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	info := Info{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Expired reports whether the token carried an expiry that is before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Remaining is the time left until expiry, zero when unknown or past.
func (i Info) Remaining(now time.Time) time.Duration {
	if i.ExpiresAt.IsZero() || now.After(i.ExpiresAt) {
		return 0
	}
	return i.ExpiresAt.Sub(now)
}
