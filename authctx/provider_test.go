package authctx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/fringe-portal/authctx"
	"github.com/jrsteele09/fringe-portal/gate"
	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail  = "admin@fringe.test"
	testMemberEmail = "member@fringe.test"
	testPassword    = "password123"
)

// fakeAuthenticator accepts two fixed accounts.
type fakeAuthenticator struct {
	logins   int
	renewals int
	renewErr error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, email, password string) (*session.Session, error) {
	f.logins++
	if password != testPassword {
		return nil, &apiclient.Error{Status: http.StatusUnauthorized, Message: "auth/invalid-credential", Code: "auth/invalid-credential"}
	}
	switch email {
	case testAdminEmail:
		return &session.Session{
			AccessToken:  "admin-access",
			RefreshToken: "admin-refresh",
			User:         &session.User{UserID: "u-admin", Email: email, Roles: []string{"Admin", "Editor"}},
		}, nil
	case testMemberEmail:
		return &session.Session{
			AccessToken:  "member-access",
			RefreshToken: "member-refresh",
			User:         &session.User{UserID: "u-member", Email: email, Roles: []string{"Member"}},
		}, nil
	}
	return nil, &apiclient.Error{Status: http.StatusUnauthorized, Message: "auth/invalid-credential", Code: "auth/invalid-credential"}
}

func (f *fakeAuthenticator) Renew(_ context.Context, refreshToken string) (*session.Session, error) {
	f.renewals++
	if f.renewErr != nil {
		return nil, f.renewErr
	}
	return &session.Session{
		AccessToken: "renewed-access",
		User:        &session.User{UserID: "u-admin", Email: testAdminEmail, Roles: []string{"Admin"}},
	}, nil
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) { n.paths = append(n.paths, path) }

type fixture struct {
	w        *httptest.ResponseRecorder
	store    *session.HTTPCookieStore
	auth     *fakeAuthenticator
	nav      *recordingNavigator
	provider *authctx.Provider
}

func adminOptions() authctx.Options {
	return authctx.Options{
		AdminLanding: "/admin/portal",
		LoginPath:    "/admin/login",
		Policy:       session.DefaultPolicy(),
	}
}

func setupFixture(t *testing.T, r *http.Request, opts authctx.Options) *fixture {
	t.Helper()
	if r == nil {
		r = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	w := httptest.NewRecorder()
	f := &fixture{
		w:     w,
		store: session.NewHTTPCookieStore(w, r),
		auth:  &fakeAuthenticator{},
		nav:   &recordingNavigator{},
	}
	f.provider = authctx.New(f.store, f.auth, f.nav, opts)
	return f
}

func requestWithSession(t *testing.T, user *session.User) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/admin/portal", nil)
	r.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "at"})
	r.AddCookie(&http.Cookie{Name: session.RefreshTokenCookie, Value: "rt"})
	encoded, err := session.EncodeUser(*user)
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: session.UserCookie, Value: encoded})
	return r
}

func TestInitialize(t *testing.T) {
	t.Run("no cookies", func(t *testing.T) {
		f := setupFixture(t, nil, adminOptions())
		assert.True(t, f.provider.IsLoading())
		f.provider.Initialize(context.Background())
		assert.False(t, f.provider.IsLoading())
		assert.False(t, f.provider.IsAuthenticated())
		assert.Nil(t, f.provider.User())
		assert.Empty(t, f.nav.paths)
	})

	t.Run("valid session", func(t *testing.T) {
		r := requestWithSession(t, &session.User{UserID: "u-1", Email: testAdminEmail, Roles: []string{"Admin"}})
		f := setupFixture(t, r, adminOptions())
		f.provider.Initialize(context.Background())
		assert.True(t, f.provider.IsAuthenticated())
		assert.True(t, f.provider.IsAdmin())
		assert.Equal(t, "u-1", f.provider.User().UserID)
		assert.Empty(t, f.nav.paths)
	})

	t.Run("malformed user logs out", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "at"})
		r.AddCookie(&http.Cookie{Name: session.UserCookie, Value: "not-json"})
		f := setupFixture(t, r, adminOptions())
		f.provider.Initialize(context.Background())

		assert.False(t, f.provider.IsAuthenticated())
		assert.Equal(t, []string{"/admin/login"}, f.nav.paths)
		assert.Empty(t, session.Value(f.store, session.AccessTokenCookie))
		assert.Empty(t, session.Value(f.store, session.UserCookie))
	})

	t.Run("runs once", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.AccessTokenCookie, Value: "at"})
		r.AddCookie(&http.Cookie{Name: session.UserCookie, Value: "not-json"})
		f := setupFixture(t, r, adminOptions())
		f.provider.Initialize(context.Background())
		f.provider.Initialize(context.Background())
		assert.Len(t, f.nav.paths, 1)
	})
}

func TestLogin_Admin(t *testing.T) {
	f := setupFixture(t, nil, adminOptions())
	f.provider.Initialize(context.Background())

	require.NoError(t, f.provider.Login(context.Background(), testAdminEmail, testPassword))
	assert.True(t, f.provider.IsAuthenticated())
	assert.True(t, f.provider.IsAdmin())
	assert.True(t, f.provider.HasRole("Editor"))
	assert.Equal(t, []string{"/admin/portal"}, f.nav.paths)

	// Reading the cookies back reproduces the in-memory user.
	loaded, err := session.Load(f.store)
	require.NoError(t, err)
	inMemory := f.provider.User()
	assert.Equal(t, inMemory.UserID, loaded.User.UserID)
	assert.Equal(t, inMemory.Email, loaded.User.Email)
	assert.Equal(t, inMemory.Roles, loaded.User.Roles)
	assert.Equal(t, "admin-access", loaded.AccessToken)
	assert.Equal(t, "admin-refresh", loaded.RefreshToken)

	// The same holds for the Set-Cookie headers seen by the browser.
	next := httptest.NewRequest(http.MethodGet, "/admin/portal", nil)
	for _, c := range f.w.Result().Cookies() {
		next.AddCookie(c)
	}
	fromHeaders, err := session.Load(next)
	require.NoError(t, err)
	assert.Equal(t, inMemory, fromHeaders.User)
}

func TestLogin_NonAdmin(t *testing.T) {
	t.Run("admin form rejects", func(t *testing.T) {
		f := setupFixture(t, nil, adminOptions())
		err := f.provider.Login(context.Background(), testMemberEmail, testPassword)
		require.ErrorIs(t, err, errors.ErrNotAdmin)
		assert.False(t, f.provider.IsAuthenticated())
		assert.Empty(t, f.nav.paths)
		assert.Empty(t, f.w.Result().Cookies())
	})

	t.Run("member landing accepts", func(t *testing.T) {
		opts := adminOptions()
		opts.AdminLanding = "/planner"
		opts.MemberLanding = "/planner"
		opts.LoginPath = "/login"
		f := setupFixture(t, nil, opts)
		require.NoError(t, f.provider.Login(context.Background(), testMemberEmail, testPassword))
		assert.True(t, f.provider.IsAuthenticated())
		assert.False(t, f.provider.IsAdmin())
		assert.Equal(t, []string{"/planner"}, f.nav.paths)
	})
}

func TestLogin_BadCredentials(t *testing.T) {
	f := setupFixture(t, nil, adminOptions())
	err := f.provider.Login(context.Background(), testAdminEmail, "wrong-password")
	require.Error(t, err)

	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "auth/invalid-credential", apiErr.Code)
	assert.False(t, f.provider.IsAuthenticated())
	assert.Empty(t, f.nav.paths)
}

func TestLogout(t *testing.T) {
	g := gate.New(gate.DefaultAreas("Admin")...)
	f := setupFixture(t, nil, adminOptions())
	require.NoError(t, f.provider.Login(context.Background(), testAdminEmail, testPassword))

	f.provider.Logout()
	for _, role := range []string{"Admin", "Editor", "Member", ""} {
		assert.False(t, f.provider.HasRole(role), role)
	}
	assert.False(t, f.provider.IsAdmin())
	assert.False(t, f.provider.IsAuthenticated())
	assert.Nil(t, f.provider.User())
	assert.Equal(t, []string{"/admin/portal", "/admin/login"}, f.nav.paths)

	d := g.Evaluate("/admin/portal", f.store)
	assert.Equal(t, gate.RedirectLogin, d.Outcome)

	// Idempotent
	f.provider.Logout()
	assert.False(t, f.provider.IsAuthenticated())
}

func TestRefresh(t *testing.T) {
	t.Run("rewrites the session", func(t *testing.T) {
		r := requestWithSession(t, &session.User{UserID: "u-admin", Email: testAdminEmail, Roles: []string{"Admin"}})
		f := setupFixture(t, r, adminOptions())
		f.provider.Initialize(context.Background())

		require.NoError(t, f.provider.Refresh(context.Background()))
		assert.Equal(t, 1, f.auth.renewals)
		assert.Equal(t, "renewed-access", session.Value(f.store, session.AccessTokenCookie))
		assert.Equal(t, "rt", session.Value(f.store, session.RefreshTokenCookie))
		assert.True(t, f.provider.IsAdmin())
		assert.Empty(t, f.nav.paths)
	})

	t.Run("missing refresh token", func(t *testing.T) {
		f := setupFixture(t, nil, adminOptions())
		assert.ErrorIs(t, f.provider.Refresh(context.Background()), errors.ErrMissingSession)
		assert.Zero(t, f.auth.renewals)
	})

	t.Run("single attempt on failure", func(t *testing.T) {
		r := requestWithSession(t, &session.User{UserID: "u-admin", Roles: []string{"Admin"}})
		f := setupFixture(t, r, adminOptions())
		f.auth.renewErr = &apiclient.Error{Status: http.StatusUnauthorized, Message: "refresh token expired"}
		require.Error(t, f.provider.Refresh(context.Background()))
		assert.Equal(t, 1, f.auth.renewals)
		assert.Equal(t, "at", session.Value(f.store, session.AccessTokenCookie))
	})
}

func TestUser_ReturnsCopy(t *testing.T) {
	r := requestWithSession(t, &session.User{UserID: "u-1", Roles: []string{"Editor"}})
	f := setupFixture(t, r, adminOptions())
	f.provider.Initialize(context.Background())

	u := f.provider.User()
	u.Roles[0] = "Admin"
	assert.False(t, f.provider.IsAdmin())
}

func TestContext(t *testing.T) {
	_, ok := authctx.FromContext(context.Background())
	assert.False(t, ok)

	f := setupFixture(t, nil, adminOptions())
	ctx := authctx.WithProvider(context.Background(), f.provider)
	p, ok := authctx.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, f.provider, p)
}

func TestHTTPNavigator(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	nav := authctx.NewHTTPNavigator(w, r)
	assert.False(t, nav.Redirected())

	nav.Navigate("/admin/portal")
	nav.Navigate("/admin/login")

	assert.True(t, nav.Redirected())
	assert.Equal(t, "/admin/portal", nav.Location())
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/portal", w.Header().Get("Location"))
}
