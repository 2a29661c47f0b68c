// Package stubapi is an in-memory stand-in for the festival backend: the
// authentication endpoints plus a small show and venue catalog. It exists for
// local development and tests.
package stubapi

import (
	"crypto/rand"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jrsteele09/fringe-portal/token/jwt"
	"github.com/jrsteele09/fringe-portal/token/refresh"
	"github.com/jrsteele09/fringe-portal/users"
	"github.com/rs/zerolog/log"
)

// Config is read from the environment by cmd/stubapi.
type Config struct {
	Port               string        `env:"STUB_PORT" envDefault:":5098"`
	Issuer             string        `env:"STUB_ISSUER" envDefault:"fringe-stub"`
	JWTSecret          string        `env:"STUB_JWT_SECRET"`
	AccessTokenExpiry  time.Duration `env:"STUB_ACCESS_TOKEN_EXPIRY" envDefault:"60m"`
	RefreshTokenExpiry time.Duration `env:"STUB_REFRESH_TOKEN_EXPIRY" envDefault:"168h"`
	Seed               SeedConfig
}

type Server struct {
	mux      *http.ServeMux
	routes   []string
	accounts users.Repo
	tokens   *jwt.Creator
	refresh  *refresh.Manager
	catalog  *catalogStore
}

// New builds the stub. An empty JWT secret is replaced by a random one, so
// tokens do not survive a restart.
func New(cfg Config, accounts users.Repo, refreshRepo refresh.Repo) *Server {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = rand.Text()
	}
	s := &Server{
		mux:      http.NewServeMux(),
		accounts: accounts,
		tokens:   jwt.NewCreator([]byte(cfg.JWTSecret), cfg.Issuer, cfg.AccessTokenExpiry),
		refresh:  refresh.NewManager(refreshRepo, cfg.RefreshTokenExpiry),
		catalog:  newCatalogStore(),
	}
	s.initRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("duration", time.Since(start)).
		Msg("stub api request")
}

// Routes lists the registered patterns.
func (s *Server) Routes() []string {
	return s.routes
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("POST /auth/login", s.LoginHandler())
	s.RegisterRouteFunc("POST /auth/refresh-token", s.RefreshTokenHandler())
	s.RegisterRouteFunc("POST /auth/forgot-password", s.ForgotPasswordHandler())

	s.RegisterRouteFunc("GET /api/shows", s.requireToken(s.ListShowsHandler()))
	s.RegisterRouteFunc("GET /api/shows/{id}", s.requireToken(s.GetShowHandler()))
	s.RegisterRouteFunc("POST /api/shows", s.requireAdmin(s.CreateShowHandler()))
	s.RegisterRouteFunc("PUT /api/shows/{id}", s.requireAdmin(s.UpdateShowHandler()))
	s.RegisterRouteFunc("DELETE /api/shows/{id}", s.requireAdmin(s.DeleteShowHandler()))
	s.RegisterRouteFunc("GET /api/shows/age-restrictions", s.requireToken(s.AgeRestrictionsHandler()))
	s.RegisterRouteFunc("GET /api/shows/show-types", s.requireToken(s.ShowTypesHandler()))

	s.RegisterRouteFunc("GET /api/venues", s.requireToken(s.ListVenuesHandler()))
	s.RegisterRouteFunc("GET /api/venues/{id}", s.requireToken(s.GetVenueHandler()))
	s.RegisterRouteFunc("POST /api/venues", s.requireAdmin(s.CreateVenueHandler()))
	s.RegisterRouteFunc("PUT /api/venues/{id}", s.requireAdmin(s.UpdateVenueHandler()))
	s.RegisterRouteFunc("DELETE /api/venues/{id}", s.requireAdmin(s.DeleteVenueHandler()))
	s.RegisterRouteFunc("GET /api/venues/types", s.requireToken(s.VenueTypesHandler()))

	s.RegisterRouteFunc("GET /roles", s.RolesHandler())
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("failed to encode stub api response")
	}
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorResponse{Message: message, Code: code})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
