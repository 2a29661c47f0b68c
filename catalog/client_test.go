package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/fringe-portal/catalog"
	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/jrsteele09/fringe-portal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *catalog.Client {
	t.Helper()

	shows := []catalog.Show{
		{ShowID: 1, ShowName: "Late Night Cabaret", VenueID: 7, TicketTypeID: utils.Ptr(3), Active: true},
		{ShowID: 2, ShowName: "Puppet Hamlet", VenueID: 8},
	}

	bearer := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer at" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
				return
			}
			h(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shows", bearer(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(shows)
	}))
	mux.HandleFunc("GET /api/shows/{id}", bearer(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(shows[0])
	}))
	mux.HandleFunc("POST /api/shows", bearer(func(w http.ResponseWriter, r *http.Request) {
		var in catalog.ShowInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(catalog.Show{ShowID: 3, ShowName: in.ShowName, TicketTypeID: in.TicketTypeID})
	}))
	mux.HandleFunc("DELETE /api/shows/{id}", bearer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("GET /api/shows/age-restrictions", bearer(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"ageRestrictionId":1,"code":"PG","description":"Parental guidance"}]`))
	}))
	mux.HandleFunc("GET /api/venues", bearer(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"venueId":7,"venueName":"The Spiegeltent","maxCapacity":350,"isAccessible":true}]`))
	}))
	mux.HandleFunc("PUT /api/venues/{id}", bearer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Venue name is required"}`))
	}))
	mux.HandleFunc("GET /roles", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"roleId":1,"roleName":"Admin","canCreate":true,"canRead":true,"canEdit":true,"canDelete":true}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return catalog.New(apiclient.New(srv.URL))
}

func TestClient_Shows(t *testing.T) {
	c := newTestServer(t).For("at")
	ctx := context.Background()

	shows, err := c.Shows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, 3, utils.Value(shows[0].TicketTypeID))
	assert.Nil(t, shows[1].TicketTypeID)

	show, err := c.Show(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Late Night Cabaret", show.ShowName)

	missing, err := c.Show(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := c.CreateShow(ctx, catalog.ShowInput{ShowName: "Clown Opera"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ShowID)
	assert.Nil(t, created.TicketTypeID)

	require.NoError(t, c.DeleteShow(ctx, 2))

	restrictions, err := c.AgeRestrictions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PG", restrictions[0].Code)
}

func TestClient_Venues(t *testing.T) {
	c := newTestServer(t).For("at")

	venues, err := c.Venues(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.True(t, venues[0].IsAccessible)

	_, err = c.UpdateVenue(context.Background(), 7, catalog.VenueInput{})
	require.Error(t, err)
	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Venue name is required", apiErr.Message)
}

func TestClient_RequiresBearer(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Shows(context.Background())
	apiErr, ok := apiclient.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	roles, err := c.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Admin", roles[0].RoleName)
}
