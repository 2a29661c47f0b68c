// Package catalog reads and edits the festival's shows, venues and roles
// through the backend API.
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/fringe-portal/internal/apiclient"
	"github.com/pkg/errors"
)

// Client calls the catalog endpoints as one user. Use For to bind the
// user's access token.
type Client struct {
	api *apiclient.Client
}

func New(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// For returns a client that sends accessToken as a bearer token.
func (c *Client) For(accessToken string) *Client {
	return &Client{api: c.api.WithBearer(accessToken)}
}

func (c *Client) Shows(ctx context.Context) ([]Show, error) {
	var shows []Show
	if err := c.api.Do(ctx, http.MethodGet, "/api/shows", nil, &shows); err != nil {
		return nil, errors.Wrap(err, "catalog shows")
	}
	return shows, nil
}

func (c *Client) Show(ctx context.Context, id int) (*Show, error) {
	var show *Show
	if err := c.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/shows/%d", id), nil, &show); err != nil {
		return nil, errors.Wrapf(err, "catalog show %d", id)
	}
	return show, nil
}

func (c *Client) CreateShow(ctx context.Context, in ShowInput) (*Show, error) {
	var show *Show
	if err := c.api.Do(ctx, http.MethodPost, "/api/shows", in, &show); err != nil {
		return nil, errors.Wrap(err, "catalog create show")
	}
	return show, nil
}

func (c *Client) UpdateShow(ctx context.Context, id int, in ShowInput) (*Show, error) {
	var show *Show
	if err := c.api.Do(ctx, http.MethodPut, fmt.Sprintf("/api/shows/%d", id), in, &show); err != nil {
		return nil, errors.Wrapf(err, "catalog update show %d", id)
	}
	return show, nil
}

func (c *Client) DeleteShow(ctx context.Context, id int) error {
	if err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/shows/%d", id), nil, nil); err != nil {
		return errors.Wrapf(err, "catalog delete show %d", id)
	}
	return nil
}

func (c *Client) AgeRestrictions(ctx context.Context) ([]AgeRestriction, error) {
	var out []AgeRestriction
	if err := c.api.Do(ctx, http.MethodGet, "/api/shows/age-restrictions", nil, &out); err != nil {
		return nil, errors.Wrap(err, "catalog age restrictions")
	}
	return out, nil
}

func (c *Client) ShowTypes(ctx context.Context) ([]TypeLookup, error) {
	var out []TypeLookup
	if err := c.api.Do(ctx, http.MethodGet, "/api/shows/show-types", nil, &out); err != nil {
		return nil, errors.Wrap(err, "catalog show types")
	}
	return out, nil
}

func (c *Client) Venues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := c.api.Do(ctx, http.MethodGet, "/api/venues", nil, &venues); err != nil {
		return nil, errors.Wrap(err, "catalog venues")
	}
	return venues, nil
}

func (c *Client) Venue(ctx context.Context, id int) (*Venue, error) {
	var venue *Venue
	if err := c.api.Do(ctx, http.MethodGet, fmt.Sprintf("/api/venues/%d", id), nil, &venue); err != nil {
		return nil, errors.Wrapf(err, "catalog venue %d", id)
	}
	return venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, in VenueInput) (*Venue, error) {
	var venue *Venue
	if err := c.api.Do(ctx, http.MethodPost, "/api/venues", in, &venue); err != nil {
		return nil, errors.Wrap(err, "catalog create venue")
	}
	return venue, nil
}

func (c *Client) UpdateVenue(ctx context.Context, id int, in VenueInput) (*Venue, error) {
	var venue *Venue
	if err := c.api.Do(ctx, http.MethodPut, fmt.Sprintf("/api/venues/%d", id), in, &venue); err != nil {
		return nil, errors.Wrapf(err, "catalog update venue %d", id)
	}
	return venue, nil
}

func (c *Client) DeleteVenue(ctx context.Context, id int) error {
	if err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/venues/%d", id), nil, nil); err != nil {
		return errors.Wrapf(err, "catalog delete venue %d", id)
	}
	return nil
}

func (c *Client) VenueTypes(ctx context.Context) ([]TypeLookup, error) {
	var out []TypeLookup
	if err := c.api.Do(ctx, http.MethodGet, "/api/venues/types", nil, &out); err != nil {
		return nil, errors.Wrap(err, "catalog venue types")
	}
	return out, nil
}

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := c.api.Do(ctx, http.MethodGet, "/roles", nil, &roles); err != nil {
		return nil, errors.Wrap(err, "catalog roles")
	}
	return roles, nil
}
