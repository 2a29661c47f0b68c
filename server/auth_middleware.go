package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/fringe-portal/authctx"
	"github.com/jrsteele09/fringe-portal/gate"
	"github.com/jrsteele09/fringe-portal/session"
)

// authContextOptions builds the provider options for one request.
type authContextOptions func(r *http.Request) authctx.Options

// AuthContext builds the request's auth provider, initialises it and stores
// it in the request context. If initialising logged the user out, the
// redirect has already been written and next is skipped.
func (s *Server) AuthContext(options authContextOptions) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			store := session.NewHTTPCookieStore(w, r)
			nav := authctx.NewHTTPNavigator(w, r)
			provider := authctx.New(store, s.auth, nav, options(r))

			provider.Initialize(r.Context())
			if nav.Redirected() {
				return
			}

			next(w, r.WithContext(authctx.WithProvider(r.Context(), provider)))
		}
	}
}

func (s *Server) adminAuthContext() func(http.HandlerFunc) http.HandlerFunc {
	area := gate.AdminArea(s.config.GetAdminRole())
	return s.AuthContext(func(r *http.Request) authctx.Options {
		return authctx.Options{
			AdminRole:    area.RequiredRole,
			AdminLanding: callbackOr(r, area),
			LoginPath:    area.LoginPath,
			Policy:       s.policy,
		}
	})
}

func (s *Server) customerAuthContext() func(http.HandlerFunc) http.HandlerFunc {
	area := gate.PlannerArea()
	return s.AuthContext(func(r *http.Request) authctx.Options {
		landing := callbackOr(r, area)
		return authctx.Options{
			AdminRole:     s.config.GetAdminRole(),
			AdminLanding:  landing,
			MemberLanding: landing,
			LoginPath:     area.LoginPath,
			Policy:        s.policy,
		}
	})
}

// callbackOr returns the callbackUrl of a login submission when it points at
// a protected page of area, otherwise the area landing.
func callbackOr(r *http.Request, area gate.Area) string {
	if r.Method != http.MethodPost || r.URL.Path != area.LoginPath {
		return area.Landing
	}
	callback := r.PostFormValue(gate.CallbackParam)
	if callback == "" {
		callback = r.URL.Query().Get(gate.CallbackParam)
	}
	if !isLocalPath(callback) || !area.Contains(callback) || area.IsPublic(callback) {
		return area.Landing
	}
	return callback
}

func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.ContainsAny(p, "\\\r\n")
}

func providerFrom(r *http.Request) *authctx.Provider {
	p, ok := authctx.FromContext(r.Context())
	if !ok {
		return nil
	}
	return p
}
