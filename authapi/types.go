package authapi

import "github.com/jrsteele09/fringe-portal/session"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresAt    string   `json:"expiresAt"`
	UserID       string   `json:"userId"`
	Email        string   `json:"email"`
	Roles        []string `json:"roles"`
}

func (t *TokenResponse) Session() *session.Session {
	roles := t.Roles
	if roles == nil {
		roles = []string{}
	}
	return &session.Session{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		User: &session.User{
			UserID:    t.UserID,
			Email:     t.Email,
			Roles:     roles,
			ExpiresAt: t.ExpiresAt,
		},
	}
}
