package config

import "time"

type SessionConfig interface {
	GetAccessTokenMaxAge() time.Duration
	GetRefreshTokenMaxAge() time.Duration
	GetSecureCookies() bool
	GetAdminRole() string
}

type Session struct {
	env string
}

var _ SessionConfig = Session{}

// GetAccessTokenMaxAge is also the lifetime of the user cookie, so role
// information expires together with the access token.
func (Session) GetAccessTokenMaxAge() time.Duration {
	return 60 * time.Minute
}

func (Session) GetRefreshTokenMaxAge() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}

func (s Session) GetSecureCookies() bool {
	return s.env != "" && s.env != envDev
}

func (Session) GetAdminRole() string {
	return "Admin"
}
