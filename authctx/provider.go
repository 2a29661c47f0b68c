// Package authctx is the auth context of a single request: it reads the
// session cookies once, exposes who the user is, and performs login, logout
// and refresh by writing the cookies and navigating the client.
package authctx

import (
	"context"
	"slices"
	"sync"

	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/session"
	"github.com/rs/zerolog/log"
)

const DefaultAdminRole = "Admin"

type Options struct {
	AdminRole    string // defaults to DefaultAdminRole
	AdminLanding string
	// MemberLanding is where users without the admin role go after login.
	// When empty such logins fail with ErrNotAdmin and no cookies are written.
	MemberLanding string
	LoginPath     string
	Policy        session.Policy
}

// State is a point-in-time view of the provider.
type State struct {
	Authenticated bool          `json:"authenticated"`
	Admin         bool          `json:"admin"`
	Loading       bool          `json:"loading"`
	User          *session.User `json:"user,omitempty"`
}

type Provider struct {
	store session.CookieStore
	auth  Authenticator
	nav   Navigator
	opts  Options

	once        sync.Once
	mu          sync.RWMutex
	loading     bool
	accessToken string
	user        *session.User
}

func New(store session.CookieStore, auth Authenticator, nav Navigator, opts Options) *Provider {
	if opts.AdminRole == "" {
		opts.AdminRole = DefaultAdminRole
	}
	return &Provider{
		store:   store,
		auth:    auth,
		nav:     nav,
		opts:    opts,
		loading: true,
	}
}

// Initialize reads the session cookies the first time it is called. A
// malformed user cookie logs the user out. Later calls do nothing.
func (p *Provider) Initialize(ctx context.Context) {
	p.once.Do(func() {
		s, err := session.Load(p.store)
		switch {
		case err == nil:
			p.setSession(s)
		case errors.Is(err, errors.ErrMalformedSession):
			log.Warn().Err(err).Msg("discarding malformed session")
			p.Logout()
		}

		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
	})
}

// Login authenticates the credentials and, on success, writes the session
// cookies and navigates to the landing page for the user's role.
func (p *Provider) Login(ctx context.Context, email, password string) error {
	s, err := p.auth.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	if s == nil || s.User == nil {
		return errors.Wrapf(errors.ErrUnknownFailure, "[authctx Login] empty session for %s", email)
	}

	landing := p.opts.AdminLanding
	admin := s.User.HasRole(p.opts.AdminRole)
	if !admin {
		if p.opts.MemberLanding == "" {
			log.Info().Str("email", email).Msg("login rejected, administrator role required")
			return errors.ErrNotAdmin
		}
		landing = p.opts.MemberLanding
	}

	if err := session.Save(p.store, *s, p.opts.Policy); err != nil {
		return errors.Wrapf(errors.ErrUnknownFailure, "[authctx Login] save session: %v", err)
	}
	p.setSession(s)

	log.Info().Str("userId", s.User.UserID).Bool("admin", admin).Msg("user logged in")
	p.navigate(landing)
	return nil
}

// Logout clears the session cookies and state and navigates to the login
// page. Calling it without a session is harmless.
func (p *Provider) Logout() {
	session.Clear(p.store)

	p.mu.Lock()
	p.accessToken = ""
	p.user = nil
	p.mu.Unlock()

	p.navigate(p.opts.LoginPath)
}

// Refresh exchanges the refresh token cookie for a new session and rewrites
// all three cookies. It is attempted once and never navigates.
func (p *Provider) Refresh(ctx context.Context) error {
	refreshToken := session.Value(p.store, session.RefreshTokenCookie)
	if refreshToken == "" {
		return errors.ErrMissingSession
	}

	s, err := p.auth.Renew(ctx, refreshToken)
	if err != nil {
		return err
	}
	if s == nil || s.User == nil {
		return errors.Wrapf(errors.ErrUnknownFailure, "[authctx Refresh] empty session")
	}
	if s.RefreshToken == "" {
		s.RefreshToken = refreshToken
	}

	if err := session.Save(p.store, *s, p.opts.Policy); err != nil {
		return errors.Wrapf(errors.ErrUnknownFailure, "[authctx Refresh] save session: %v", err)
	}
	p.setSession(s)
	return nil
}

func (p *Provider) HasRole(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.accessToken == "" {
		return false
	}
	return p.user.HasRole(name)
}

func (p *Provider) IsAdmin() bool {
	return p.HasRole(p.opts.AdminRole)
}

func (p *Provider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accessToken != "" && p.user != nil
}

// AccessToken is the bearer token for backend calls made on the user's behalf.
func (p *Provider) AccessToken() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accessToken
}

func (p *Provider) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// User returns a copy of the current user, or nil when unauthenticated.
func (p *Provider) User() *session.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	u.Roles = slices.Clone(p.user.Roles)
	return &u
}

func (p *Provider) State() State {
	return State{
		Authenticated: p.IsAuthenticated(),
		Admin:         p.IsAdmin(),
		Loading:       p.IsLoading(),
		User:          p.User(),
	}
}

func (p *Provider) setSession(s *session.Session) {
	u := *s.User
	u.Roles = slices.Clone(s.User.Roles)

	p.mu.Lock()
	p.accessToken = s.AccessToken
	p.user = &u
	p.mu.Unlock()
}

func (p *Provider) navigate(path string) {
	if p.nav == nil || path == "" {
		return
	}
	p.nav.Navigate(path)
}
