package session_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(cookies map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range cookies {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func TestEncodeDecodeUser_RoundTrip(t *testing.T) {
	users := []session.User{
		{UserID: "u-1", Email: "admin@fringe.test", Roles: []string{"Admin"}},
		{UserID: "u-2", Email: "o'brien+x@fringe.test", Roles: []string{"Admin", "Editor"}, ExpiresAt: "2026-01-01T00:00:00Z"},
		{UserID: "u-3", Email: "member@fringe.test", Roles: []string{}},
		{UserID: "ü; \"quoted\"", Email: "a@b.c", Roles: []string{"röle with spaces"}},
	}

	for _, u := range users {
		t.Run(u.UserID, func(t *testing.T) {
			encoded, err := session.EncodeUser(u)
			require.NoError(t, err)
			assert.NotContains(t, encoded, `"`)
			assert.NotContains(t, encoded, ";")

			decoded, err := session.DecodeUser(encoded)
			require.NoError(t, err)
			assert.Equal(t, u.UserID, decoded.UserID)
			assert.Equal(t, u.Email, decoded.Email)
			assert.ElementsMatch(t, u.Roles, decoded.Roles)
		})
	}
}

func TestDecodeUser_Malformed(t *testing.T) {
	tests := map[string]string{
		"not json":       "not-json",
		"null":           url.QueryEscape("null"),
		"array":          url.QueryEscape(`[{"userId":"u-1"}]`),
		"number":         "42",
		"string":         url.QueryEscape(`"admin"`),
		"bad escape":     "%zz",
		"truncated json": url.QueryEscape(`{"userId":"u-1"`),
		"roles not list": url.QueryEscape(`{"userId":"u-1","roles":"Admin"}`),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			u, err := session.DecodeUser(raw)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, errors.ErrMalformedSession)
		})
	}
}

func TestUser_HasRole(t *testing.T) {
	u := &session.User{Roles: []string{"Admin"}}
	assert.True(t, u.HasRole("Admin"))
	assert.False(t, u.HasRole("admin"))
	assert.False(t, u.HasRole("Editor"))

	var nilUser *session.User
	assert.False(t, nilUser.HasRole("Admin"))
}

func TestLoad(t *testing.T) {
	encoded, err := session.EncodeUser(session.User{UserID: "u-1", Email: "a@b.c", Roles: []string{"Admin"}})
	require.NoError(t, err)

	t.Run("complete", func(t *testing.T) {
		s, err := session.Load(requestWithCookies(map[string]string{
			session.AccessTokenCookie:  "at",
			session.RefreshTokenCookie: "rt",
			session.UserCookie:         encoded,
		}))
		require.NoError(t, err)
		assert.Equal(t, "at", s.AccessToken)
		assert.Equal(t, "rt", s.RefreshToken)
		assert.True(t, s.User.HasRole("Admin"))
	})

	t.Run("missing access token", func(t *testing.T) {
		_, err := session.Load(requestWithCookies(map[string]string{session.UserCookie: encoded}))
		assert.ErrorIs(t, err, errors.ErrMissingSession)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := session.Load(requestWithCookies(map[string]string{session.AccessTokenCookie: "at"}))
		assert.ErrorIs(t, err, errors.ErrMissingSession)
	})

	t.Run("malformed user", func(t *testing.T) {
		_, err := session.Load(requestWithCookies(map[string]string{
			session.AccessTokenCookie: "at",
			session.UserCookie:        "not-json",
		}))
		assert.ErrorIs(t, err, errors.ErrMalformedSession)
	})
}

func TestSaveAndClear(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	store := session.NewHTTPCookieStore(w, r)

	policy := session.DefaultPolicy()
	policy.Secure = true
	user := &session.User{UserID: "u-1", Email: "admin@fringe.test", Roles: []string{"Admin"}}

	require.NoError(t, session.Save(store, session.Session{AccessToken: "at", RefreshToken: "rt", User: user}, policy))

	// Written cookies are visible to reads in the same request.
	loaded, err := session.Load(store)
	require.NoError(t, err)
	assert.Equal(t, "at", loaded.AccessToken)
	assert.Equal(t, "rt", loaded.RefreshToken)
	assert.Equal(t, user.Email, loaded.User.Email)

	cookies := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c
	}
	require.Len(t, cookies, 3)

	assert.Equal(t, int(time.Hour/time.Second), cookies[session.AccessTokenCookie].MaxAge)
	assert.Equal(t, int(7*24*time.Hour/time.Second), cookies[session.RefreshTokenCookie].MaxAge)
	assert.Equal(t, int(time.Hour/time.Second), cookies[session.UserCookie].MaxAge)
	for _, c := range cookies {
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
		assert.True(t, c.Secure)
		assert.False(t, c.HttpOnly)
	}

	session.Clear(store)
	_, err = session.Load(store)
	assert.ErrorIs(t, err, errors.ErrMissingSession)
	assert.Empty(t, session.Value(store, session.RefreshTokenCookie))

	// Clearing twice is harmless.
	session.Clear(store)
}

func TestValue_Absent(t *testing.T) {
	assert.Empty(t, session.Value(requestWithCookies(nil), session.AccessTokenCookie))
	assert.Empty(t, session.Value(nil, session.AccessTokenCookie))
}
