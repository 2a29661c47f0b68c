package stubapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jrsteele09/fringe-portal/catalog"
	"github.com/jrsteele09/fringe-portal/internal/errors"
)

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil && id > 0
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", "")
	case errors.Is(err, errors.ErrConflict):
		writeError(w, http.StatusConflict, err.Error(), "")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", "")
	}
}

func (s *Server) ListShowsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.listShows())
	}
}

func (s *Server) GetShowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid show id", "")
			return
		}
		show, err := s.catalog.getShow(id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, show)
	}
}

func (s *Server) CreateShowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.ShowInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.ShowName) == "" {
			writeError(w, http.StatusBadRequest, "Show name is required", "")
			return
		}
		writeJSON(w, http.StatusCreated, s.catalog.addShow(in))
	}
}

func (s *Server) UpdateShowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid show id", "")
			return
		}
		var in catalog.ShowInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.ShowName) == "" {
			writeError(w, http.StatusBadRequest, "Show name is required", "")
			return
		}
		show, err := s.catalog.updateShow(id, in)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, show)
	}
}

func (s *Server) DeleteShowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid show id", "")
			return
		}
		if err := s.catalog.deleteShow(id); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AgeRestrictionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.ageRestrictions)
	}
}

func (s *Server) ShowTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.showTypes)
	}
}

func (s *Server) ListVenuesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.listVenues())
	}
}

func (s *Server) GetVenueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid venue id", "")
			return
		}
		venue, err := s.catalog.getVenue(id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, venue)
	}
}

func (s *Server) CreateVenueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.VenueInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.VenueName) == "" {
			writeError(w, http.StatusBadRequest, "Venue name is required", "")
			return
		}
		writeJSON(w, http.StatusCreated, s.catalog.addVenue(in))
	}
}

func (s *Server) UpdateVenueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid venue id", "")
			return
		}
		var in catalog.VenueInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.VenueName) == "" {
			writeError(w, http.StatusBadRequest, "Venue name is required", "")
			return
		}
		venue, err := s.catalog.updateVenue(id, in)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, venue)
	}
}

func (s *Server) DeleteVenueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid venue id", "")
			return
		}
		if err := s.catalog.deleteVenue(id); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) VenueTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.venueTypes)
	}
}

func (s *Server) RolesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.roles)
	}
}
