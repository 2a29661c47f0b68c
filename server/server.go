package server

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/fringe-portal/authapi"
	"github.com/jrsteele09/fringe-portal/catalog"
	"github.com/jrsteele09/fringe-portal/gate"
	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/jrsteele09/fringe-portal/internal/config"
	"github.com/jrsteele09/fringe-portal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env      string
	mux      *http.ServeMux
	routes   []string
	handler  http.HandlerFunc
	config   config.Config
	gate     *gate.Gate
	registry *prometheus.Registry
	auth     *authapi.Client
	catalog  *catalog.Client
	validate *validator.Validate
	cors     *cors.Cors
	policy   session.Policy
}

// New wires the portal to the backend API behind api.
func New(cfg config.Config, api *apiclient.Client) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		gate:     gate.New(gate.DefaultAreas(cfg.GetAdminRole())...),
		registry: registry,
		auth:     authapi.New(api),
		catalog:  catalog.New(api),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cors: cors.New(cors.Options{
			AllowedOrigins:   cfg.GetAllowedOrigins().List(),
			AllowedMethods:   cfg.GetAllowedMethods(),
			AllowedHeaders:   cfg.GetAllowedHeaders(),
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		policy: session.Policy{
			AccessTokenMaxAge:  cfg.GetAccessTokenMaxAge(),
			RefreshTokenMaxAge: cfg.GetRefreshTokenMaxAge(),
			Secure:             cfg.GetSecureCookies(),
		},
	}

	// The gate sees every request before the mux routes it.
	s.handler = ChainMiddleware(s.mux.ServeHTTP,
		s.RecoverMiddleware,
		s.LoggingMiddleware,
		s.gate.Middleware(gate.NewMetrics(registry)),
	)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Routes lists the registered patterns.
func (s *Server) Routes() []string {
	return s.routes
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		method, path, found := strings.Cut(route, " ")
		if !found {
			method, path = "ANY", route
		}
		log.Debug().Msg(colourMethod(method) + " " + path)
	}
}
