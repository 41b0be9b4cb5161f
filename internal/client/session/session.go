// Package session holds the authenticated user's credential for the lifetime
// of the process. Nothing here is ever written to disk.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is one logged-in identity and its access token.
type Session struct {
	UserID      string
	Username    string
	AccessToken string
	expiresAt   time.Time
}

// New builds a Session. When the access token is a JWT carrying an exp
// claim, the expiry is remembered; opaque tokens are accepted as-is and
// treated as non-expiring on the client side (the provider still enforces
// its own lifetime).
func New(userID, username, accessToken string) *Session {
	s := &Session{UserID: userID, Username: username, AccessToken: accessToken}

	// No signature check here: the client is not the verifying party, it
	// only wants to know when to prompt for a fresh login.
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return s
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		s.expiresAt = exp.Time
	}
	return s
}

// ExpiresAt returns the token expiry, or the zero time when unknown.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// Expired reports whether the token is known to be past its lifetime.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}
