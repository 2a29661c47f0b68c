package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteHome = "/"

	// Admin area - public pages
	RouteAdminLogin          = "/admin/login"
	RouteAdminForgotPassword = "/admin/forgot-password"

	// Admin area - protected pages
	RouteAdminLogout  = "/admin/logout"
	RouteAdminPortal  = "/admin/portal"
	RouteAdminShows   = "/admin/portal/shows-management"
	RouteAdminVenues  = "/admin/portal/venue-management"

	// Admin area - JSON
	RouteAdminAPIShows  = "/admin/api/shows"
	RouteAdminAPIShow   = "/admin/api/shows/{id}"
	RouteAdminAPIVenues = "/admin/api/venues"
	RouteAdminAPIVenue  = "/admin/api/venues/{id}"
	RouteAdminAPIRoles  = "/admin/api/roles"

	// Customer area
	RouteLogin   = "/login"
	RouteLogout  = "/logout"
	RoutePlanner = "/planner"

	RouteUnauthorized = "/unauthorized"

	// Session API
	RouteAPISession        = "/api/session"
	RouteAPISessionRefresh = "/api/session/refresh"
	RouteAPIPreflight      = "/api/"

	RouteMetrics = "/metrics"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
)
