package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is what a logged-in browser carries: the API access token, the
// refresh token issued alongside it, and the user object.
type Session struct {
	Token   string `json:"token,omitempty"`
	Refresh string `json:"refresh,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// Authenticated reports whether a token is present. Expiry is checked by
// the navigation gate; the backend answers 401 for anything else.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session's user holds the admin role.
func (s Session) IsAdmin() bool {
	return s.User.IsAdmin()
}

// ExpiresAt reads the exp claim of the access token. The signature is not
// checked: only the backend holds the key. ok is false for opaque tokens or
// tokens without exp.
func (s Session) ExpiresAt() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the access token carries an exp claim in the past.
func (s Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}
