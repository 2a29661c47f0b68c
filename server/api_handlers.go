package server

import (
	"net/http"
	"strconv"

	"github.com/jrsteele09/fringe-portal/authapi"
	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/rs/zerolog/log"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil && id > 0
}

// SessionAPIHandler reports the auth context of the caller.
func (s *Server) SessionAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := providerFrom(r)
		if provider == nil {
			writeJSON(w, http.StatusInternalServerError, jsonError{Message: "Auth context missing"})
			return
		}
		writeJSON(w, http.StatusOK, provider.State())
	}
}

// SessionRefreshAPIHandler exchanges the refresh token once. Failures are
// reported and the existing cookies are left alone.
func (s *Server) SessionRefreshAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := providerFrom(r)
		if provider == nil {
			writeJSON(w, http.StatusInternalServerError, jsonError{Message: "Auth context missing"})
			return
		}

		err := provider.Refresh(r.Context())
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, provider.State())
		case errors.Is(err, errors.ErrMissingSession):
			writeJSON(w, http.StatusUnauthorized, jsonError{Message: "No refresh token"})
		case authapi.IsAuthFailure(err):
			writeJSON(w, http.StatusUnauthorized, jsonError{Message: "Refresh token rejected"})
		default:
			log.Err(err).Msg("Session refresh failed")
			writeJSON(w, http.StatusBadGateway, jsonError{Message: msgSomethingWrong})
		}
	}
}

func (s *Server) AdminShowsAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shows, err := s.catalogFor(r).Shows(r.Context())
		if err != nil {
			writeAPIError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shows)
	}
}

func (s *Server) AdminDeleteShowAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, jsonError{Message: "Invalid show id"})
			return
		}
		if err := s.catalogFor(r).DeleteShow(r.Context(), id); err != nil {
			writeAPIError(w, err)
			return
		}
		log.Info().Int("showId", id).Msg("Show deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AdminVenuesAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := s.catalogFor(r).Venues(r.Context())
		if err != nil {
			writeAPIError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, venues)
	}
}

func (s *Server) AdminDeleteVenueAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, jsonError{Message: "Invalid venue id"})
			return
		}
		if err := s.catalogFor(r).DeleteVenue(r.Context(), id); err != nil {
			writeAPIError(w, err)
			return
		}
		log.Info().Int("venueId", id).Msg("Venue deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AdminRolesAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := s.catalogFor(r).Roles(r.Context())
		if err != nil {
			writeAPIError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, roles)
	}
}
