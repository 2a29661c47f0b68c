package server

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() {
	admin := s.adminAuthContext()
	customer := s.customerAuthContext()

	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.HomeHandler(), s.HTMLMiddleWare(customer)...))

	// ADMIN LOGIN
	s.RegisterRouteHandler("GET "+RouteAdminLogin, ChainMiddleware(s.LoginPageHandler(adminLoginPage), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("POST "+RouteAdminLogin, ChainMiddleware(s.LoginSubmissionHandler(adminLoginPage), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("GET "+RouteAdminForgotPassword, ChainMiddleware(s.ForgotPasswordGetHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("POST "+RouteAdminForgotPassword, ChainMiddleware(s.ForgotPasswordPostHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("POST "+RouteAdminLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare(admin)...))

	// ADMIN PORTAL
	s.RegisterRouteHandler("GET "+RouteAdminPortal, ChainMiddleware(s.PortalHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("GET "+RouteAdminShows, ChainMiddleware(s.ShowsManagementHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("GET "+RouteAdminVenues, ChainMiddleware(s.VenueManagementHandler(), s.HTMLMiddleWare(admin)...))

	s.RegisterRouteHandler("GET "+RouteAdminAPIShows, ChainMiddleware(s.AdminShowsAPIHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("DELETE "+RouteAdminAPIShow, ChainMiddleware(s.AdminDeleteShowAPIHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("GET "+RouteAdminAPIVenues, ChainMiddleware(s.AdminVenuesAPIHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("DELETE "+RouteAdminAPIVenue, ChainMiddleware(s.AdminDeleteVenueAPIHandler(), s.HTMLMiddleWare(admin)...))
	s.RegisterRouteHandler("GET "+RouteAdminAPIRoles, ChainMiddleware(s.AdminRolesAPIHandler(), s.HTMLMiddleWare(admin)...))

	// CUSTOMER
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(customerLoginPage), s.HTMLMiddleWare(customer)...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(customerLoginPage), s.HTMLMiddleWare(customer)...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare(customer)...))
	s.RegisterRouteHandler("GET "+RoutePlanner, ChainMiddleware(s.PlannerHandler(), s.HTMLMiddleWare(customer)...))

	s.RegisterRouteHandler("GET "+RouteUnauthorized, ChainMiddleware(s.UnauthorizedHandler(), s.HTMLMiddleWare()...))

	// API routes
	s.RegisterRouteHandler("GET "+RouteAPISession, ChainMiddleware(s.SessionAPIHandler(), s.APIMiddleware(customer)...))
	s.RegisterRouteHandler("POST "+RouteAPISessionRefresh, ChainMiddleware(s.SessionRefreshAPIHandler(), s.APIMiddleware(customer)...))
	s.RegisterRouteHandler("OPTIONS "+RouteAPIPreflight, ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {}, s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := StreamFile(w, r, filePath); err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("static file not found")
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}
