package gate_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/fringe-portal/gate"
	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminRole = "Admin"

func encodedUser(t *testing.T, roles ...string) string {
	t.Helper()
	v, err := session.EncodeUser(session.User{UserID: "u-1", Email: "user@fringe.test", Roles: roles})
	require.NoError(t, err)
	return v
}

func request(path string, cookies map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	for name, value := range cookies {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

var protectedAdminPaths = []string{
	"/admin",
	"/admin/",
	"/admin/portal",
	"/admin/portal/shows-management",
	"/admin/api/shows/42",
	"/admin/login-help",
}

func TestEvaluate_MissingCookieRedirectsToLoginWithCallback(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)
	user := encodedUser(t, adminRole)

	partial := map[string]map[string]string{
		"no cookies":     {},
		"no user":        {session.AccessTokenCookie: "at"},
		"no token":       {session.UserCookie: user},
		"refresh only":   {session.RefreshTokenCookie: "rt"},
		"empty token":    {session.AccessTokenCookie: "", session.UserCookie: user},
		"refresh + user": {session.RefreshTokenCookie: "rt", session.UserCookie: user},
	}

	for _, path := range protectedAdminPaths {
		for name, cookies := range partial {
			t.Run(path+"/"+name, func(t *testing.T) {
				d := g.Evaluate(path, request(path, cookies))
				require.Equal(t, gate.RedirectLogin, d.Outcome)
				assert.ErrorIs(t, d.Reason, errors.ErrMissingSession)

				loc, err := url.Parse(d.Location)
				require.NoError(t, err)
				assert.Equal(t, "/admin/login", loc.Path)
				assert.Equal(t, path, loc.Query().Get(gate.CallbackParam))
			})
		}
	}
}

func TestEvaluate_NonAdminRedirectsToUnauthorized(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)

	for _, roles := range [][]string{nil, {}, {"Editor"}, {"admin"}, {"Member", "Viewer"}} {
		cookies := map[string]string{
			session.AccessTokenCookie: "at",
			session.UserCookie:        encodedUser(t, roles...),
		}
		for _, path := range protectedAdminPaths {
			d := g.Evaluate(path, request(path, cookies))
			assert.Equal(t, gate.RedirectUnauthorized, d.Outcome, "roles %v path %s", roles, path)
			assert.Equal(t, gate.UnauthorizedPath, d.Location)
			assert.ErrorIs(t, d.Reason, errors.ErrUnauthorized)
		}
	}
}

func TestEvaluate_MalformedUserRedirectsToLogin(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)

	for _, raw := range []string{"not-json", "%7B", "null", "%5B%5D", "42", "%zz"} {
		t.Run(raw, func(t *testing.T) {
			path := "/admin/portal"
			var d gate.Decision
			require.NotPanics(t, func() {
				d = g.Evaluate(path, request(path, map[string]string{
					session.AccessTokenCookie: "at",
					session.UserCookie:        raw,
				}))
			})
			assert.Equal(t, gate.RedirectLogin, d.Outcome)
			assert.Equal(t, "/admin/login", d.Location)
			assert.ErrorIs(t, d.Reason, errors.ErrMalformedSession)
		})
	}
}

func TestEvaluate_AdminAllowed(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)
	cookies := map[string]string{
		session.AccessTokenCookie: "at",
		session.UserCookie:        encodedUser(t, "Editor", adminRole),
	}

	for _, path := range protectedAdminPaths {
		d := g.Evaluate(path, request(path, cookies))
		assert.Equal(t, gate.Allow, d.Outcome, path)
		assert.Equal(t, "admin", d.Area)
		assert.NoError(t, d.Reason)
	}
}

func TestEvaluate_PublicPaths(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)

	t.Run("admin session is sent to the portal", func(t *testing.T) {
		for _, path := range []string{"/admin/login", "/admin/forgot-password"} {
			d := g.Evaluate(path, request(path, map[string]string{
				session.AccessTokenCookie: "at",
				session.UserCookie:        encodedUser(t, adminRole),
			}))
			assert.Equal(t, gate.RedirectLanding, d.Outcome, path)
			assert.Equal(t, "/admin/portal", d.Location)
		}
	})

	t.Run("no session renders the page", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			d := g.Evaluate("/admin/login", request("/admin/login", nil))
			assert.Equal(t, gate.Allow, d.Outcome)
		}
	})

	t.Run("non-admin session renders the page", func(t *testing.T) {
		d := g.Evaluate("/admin/login", request("/admin/login", map[string]string{
			session.AccessTokenCookie: "at",
			session.UserCookie:        encodedUser(t, "Editor"),
		}))
		assert.Equal(t, gate.Allow, d.Outcome)
	})

	t.Run("malformed session fails open", func(t *testing.T) {
		d := g.Evaluate("/admin/login", request("/admin/login", map[string]string{
			session.AccessTokenCookie: "at",
			session.UserCookie:        "not-json",
		}))
		assert.Equal(t, gate.Allow, d.Outcome)
		assert.NoError(t, d.Reason)
	})
}

func TestEvaluate_OutsideAreas(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)

	for _, path := range []string{"/", "/login", "/unauthorized", "/administrator", "/css/site.css", "/plannerx"} {
		d := g.Evaluate(path, request(path, nil))
		assert.Equal(t, gate.Allow, d.Outcome, path)
		assert.Empty(t, d.Area, path)
	}
}

func TestEvaluate_PlannerNeedsSessionOnly(t *testing.T) {
	g := gate.New(gate.DefaultAreas(adminRole)...)

	d := g.Evaluate("/planner", request("/planner", nil))
	assert.Equal(t, gate.RedirectLogin, d.Outcome)
	assert.Equal(t, "/login?callbackUrl=%2Fplanner", d.Location)

	d = g.Evaluate("/planner/day/1", request("/planner/day/1", map[string]string{
		session.AccessTokenCookie: "at",
		session.UserCookie:        encodedUser(t),
	}))
	assert.Equal(t, gate.Allow, d.Outcome)
	assert.Equal(t, "planner", d.Area)
}

func TestArea_Contains(t *testing.T) {
	area := gate.AdminArea(adminRole)
	assert.True(t, area.Contains("/admin"))
	assert.True(t, area.Contains("/admin/x"))
	assert.False(t, area.Contains("/adminx"))
	assert.False(t, area.Contains("/"))

	assert.True(t, area.IsPublic("/admin/login"))
	assert.True(t, area.IsPublic("/admin/login/"))
	assert.False(t, area.IsPublic("/admin/login-help"))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "allow", gate.Allow.String())
	assert.Equal(t, "redirect_login", gate.RedirectLogin.String())
	assert.Equal(t, "redirect_unauthorized", gate.RedirectUnauthorized.String())
	assert.Equal(t, "redirect_landing", gate.RedirectLanding.String())
	assert.Equal(t, "outcome(9)", gate.Outcome(9).String())
}
