// Package session holds the client-held session: three cookies written and
// cleared together, with no server-side store behind them.
package session

import (
	"encoding/json"
	"net/url"
	"slices"

	"github.com/jrsteele09/fringe-portal/internal/errors"
)

// Cookie names
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
	UserCookie         = "user"
)

// User is the identity record carried in the user cookie.
type User struct {
	UserID    string   `json:"userId"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	ExpiresAt string   `json:"expiresAt,omitempty"`
}

// HasRole reports whether the user holds the named role. A nil user holds no roles.
func (u *User) HasRole(name string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, name)
}

type Session struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

// EncodeUser serialises u as JSON and escapes it for use as a cookie value.
func EncodeUser(u User) (string, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return "", errors.Wrapf(err, "[session EncodeUser] marshal")
	}
	return url.QueryEscape(string(data)), nil
}

// DecodeUser reverses EncodeUser. Anything that is not an escaped JSON object
// returns an error wrapping ErrMalformedSession.
func DecodeUser(raw string) (*User, error) {
	text, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedSession, "[session DecodeUser] unescape: %v", err)
	}

	var u *User
	if err := json.Unmarshal([]byte(text), &u); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedSession, "[session DecodeUser] %v", err)
	}
	if u == nil {
		return nil, errors.Wrapf(errors.ErrMalformedSession, "[session DecodeUser] null user")
	}
	return u, nil
}

// Load reads the session from cookies. ErrMissingSession is returned when the
// access token or user cookie is absent, since a partial session is never
// trusted. ErrMalformedSession is returned when the user cookie does not decode.
func Load(r CookieReader) (*Session, error) {
	accessToken := Value(r, AccessTokenCookie)
	rawUser := Value(r, UserCookie)
	if accessToken == "" || rawUser == "" {
		return nil, errors.ErrMissingSession
	}

	user, err := DecodeUser(rawUser)
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: Value(r, RefreshTokenCookie),
		User:         user,
	}, nil
}
