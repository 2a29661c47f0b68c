// Package gate decides, before any handler runs, whether a request may proceed
// or must be redirected. Decisions are made from request cookies alone.
package gate

import (
	"fmt"
	"net/url"

	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/session"
)

type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectUnauthorized
	RedirectLanding
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect_login"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	case RedirectLanding:
		return "redirect_landing"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Decision is the result of evaluating one request. Location is set for
// redirect outcomes. Reason explains a redirect to login or unauthorized.
type Decision struct {
	Outcome  Outcome
	Location string
	Area     string
	Reason   error
}

type Gate struct {
	areas []Area
}

// New builds a gate over areas. The first area containing a path wins.
func New(areas ...Area) *Gate {
	return &Gate{areas: areas}
}

func (g *Gate) Areas() []Area {
	return g.areas
}

// Evaluate applies the area rules to path using cookies. It never blocks and
// never fails: every path yields a decision.
func (g *Gate) Evaluate(path string, cookies session.CookieReader) Decision {
	for _, area := range g.areas {
		if !area.Contains(path) {
			continue
		}
		if area.IsPublic(path) {
			return evaluatePublic(area, cookies)
		}
		return evaluateProtected(area, path, cookies)
	}
	return Decision{Outcome: Allow}
}

func evaluateProtected(area Area, path string, cookies session.CookieReader) Decision {
	s, err := session.Load(cookies)
	switch {
	case errors.Is(err, errors.ErrMissingSession):
		return Decision{
			Outcome:  RedirectLogin,
			Location: loginWithCallback(area.LoginPath, path),
			Area:     area.Name,
			Reason:   errors.ErrMissingSession,
		}
	case err != nil:
		// A session that cannot be read gets no callback.
		return Decision{
			Outcome:  RedirectLogin,
			Location: area.LoginPath,
			Area:     area.Name,
			Reason:   errors.ErrMalformedSession,
		}
	}

	if !satisfies(area, s.User) {
		return Decision{
			Outcome:  RedirectUnauthorized,
			Location: UnauthorizedPath,
			Area:     area.Name,
			Reason:   errors.ErrUnauthorized,
		}
	}
	return Decision{Outcome: Allow, Area: area.Name}
}

// evaluatePublic sends users that already hold a qualifying session to the
// area landing. Any problem reading the session lets the request through.
func evaluatePublic(area Area, cookies session.CookieReader) Decision {
	s, err := session.Load(cookies)
	if err != nil || !satisfies(area, s.User) || area.Landing == "" {
		return Decision{Outcome: Allow, Area: area.Name}
	}
	return Decision{Outcome: RedirectLanding, Location: area.Landing, Area: area.Name}
}

func satisfies(area Area, u *session.User) bool {
	return area.RequiredRole == "" || u.HasRole(area.RequiredRole)
}

func loginWithCallback(loginPath, path string) string {
	return loginPath + "?" + url.Values{CallbackParam: {path}}.Encode()
}
