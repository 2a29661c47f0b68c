package server

import (
	"net/http"

	"github.com/jrsteele09/fringe-portal/catalog"
	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/jrsteele09/fringe-portal/internal/utils"
	"github.com/rs/zerolog/log"
)

const msgCatalogUnavailable = "Unable to load data from the festival API."

type PortalPageData struct {
	pageData
	ShowCount   int
	VenueCount  int
	ActiveShows int
}

type showRow struct {
	catalog.Show
	TicketType string
}

type ShowsPageData struct {
	pageData
	Shows []showRow
}

type VenuesPageData struct {
	pageData
	Venues []catalog.Venue
}

// catalogFor returns a catalog client authorised as the current user.
func (s *Server) catalogFor(r *http.Request) *catalog.Client {
	if p := providerFrom(r); p != nil {
		return s.catalog.For(p.AccessToken())
	}
	return s.catalog
}

// catalogError logs err and returns the message shown on the page. A 401 from
// the backend means the access token is no longer accepted.
func catalogError(err error) string {
	if apiErr, ok := apiclient.AsError(err); ok && apiErr.Status == http.StatusUnauthorized {
		return "Your session has expired. Please log in again."
	}
	log.Err(err).Msg("Catalog request failed")
	return msgCatalogUnavailable
}

func (s *Server) PortalHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("portal.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := PortalPageData{pageData: s.newPageData(r, "Admin Portal")}
		c := s.catalogFor(r)

		shows, err := c.Shows(r.Context())
		if err != nil {
			data.Error = catalogError(err)
			renderPage(w, tmpl, http.StatusOK, data)
			return
		}
		venues, err := c.Venues(r.Context())
		if err != nil {
			data.Error = catalogError(err)
			renderPage(w, tmpl, http.StatusOK, data)
			return
		}

		data.ShowCount = len(shows)
		data.VenueCount = len(venues)
		for _, show := range shows {
			if show.Active {
				data.ActiveShows++
			}
		}
		renderPage(w, tmpl, http.StatusOK, data)
	}
}

func (s *Server) ShowsManagementHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("shows.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := ShowsPageData{pageData: s.newPageData(r, "Shows Management")}

		shows, err := s.catalogFor(r).Shows(r.Context())
		if err != nil {
			data.Error = catalogError(err)
			renderPage(w, tmpl, http.StatusOK, data)
			return
		}

		for _, show := range shows {
			row := showRow{Show: show, TicketType: "-"}
			if show.TicketTypeID != nil {
				row.TicketType = show.TicketTypeName
				if row.TicketType == "" {
					row.TicketType = "#" + itoa(utils.ValueOr(show.TicketTypeID, 0))
				}
			}
			data.Shows = append(data.Shows, row)
		}
		renderPage(w, tmpl, http.StatusOK, data)
	}
}

func (s *Server) VenueManagementHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("venues.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := VenuesPageData{pageData: s.newPageData(r, "Venue Management")}

		venues, err := s.catalogFor(r).Venues(r.Context())
		if err != nil {
			data.Error = catalogError(err)
		}
		data.Venues = venues
		renderPage(w, tmpl, http.StatusOK, data)
	}
}

func (s *Server) PlannerHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("planner.html")

	return func(w http.ResponseWriter, r *http.Request) {
		data := ShowsPageData{pageData: s.newPageData(r, "My Planner")}

		shows, err := s.catalogFor(r).Shows(r.Context())
		if err != nil {
			data.Error = catalogError(err)
		}
		for _, show := range shows {
			if show.Active {
				data.Shows = append(data.Shows, showRow{Show: show})
			}
		}
		renderPage(w, tmpl, http.StatusOK, data)
	}
}

// HomeHandler renders the home page
func (s *Server) HomeHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("home.html")

	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, tmpl, http.StatusOK, s.newPageData(r, s.config.GetAppName()))
	}
}

func (s *Server) UnauthorizedHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("unauthorized.html")

	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, tmpl, http.StatusForbidden, s.newPageData(r, "Access Denied"))
	}
}
