package session

import (
	"net/http"
	"time"
)

// Policy fixes the cookie lifetimes. The user cookie shares the access token
// lifetime.
type Policy struct {
	AccessTokenMaxAge  time.Duration
	RefreshTokenMaxAge time.Duration
	Secure             bool
}

func DefaultPolicy() Policy {
	return Policy{
		AccessTokenMaxAge:  60 * time.Minute,
		RefreshTokenMaxAge: 7 * 24 * time.Hour,
	}
}

func (p Policy) options(maxAge time.Duration) Options {
	return Options{
		MaxAge:   maxAge,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
		Secure:   p.Secure,
		HttpOnly: false, // read by client-side scripts
	}
}

// Save writes all three cookies. The user is encoded before anything is
// written so a failure leaves the existing cookies untouched.
func Save(store CookieStore, s Session, p Policy) error {
	var user User
	if s.User != nil {
		user = *s.User
	}
	encoded, err := EncodeUser(user)
	if err != nil {
		return err
	}

	store.Set(AccessTokenCookie, s.AccessToken, p.options(p.AccessTokenMaxAge))
	store.Set(RefreshTokenCookie, s.RefreshToken, p.options(p.RefreshTokenMaxAge))
	store.Set(UserCookie, encoded, p.options(p.AccessTokenMaxAge))
	return nil
}

// Clear deletes all three cookies. It is safe to call without a session.
func Clear(store CookieStore) {
	store.Delete(AccessTokenCookie)
	store.Delete(RefreshTokenCookie)
	store.Delete(UserCookie)
}
