package stubapi

import (
	"sort"
	"sync"

	"github.com/jrsteele09/fringe-portal/catalog"
	"github.com/jrsteele09/fringe-portal/internal/errors"
	"github.com/jrsteele09/fringe-portal/internal/utils"
)

type catalogStore struct {
	lock            sync.RWMutex
	shows           map[int]catalog.Show
	venues          map[int]catalog.Venue
	nextShowID      int
	nextVenueID     int
	ageRestrictions []catalog.AgeRestriction
	showTypes       []catalog.TypeLookup
	venueTypes      []catalog.TypeLookup
	roles           []catalog.Role
}

func newCatalogStore() *catalogStore {
	cs := &catalogStore{
		shows:  make(map[int]catalog.Show),
		venues: make(map[int]catalog.Venue),
		ageRestrictions: []catalog.AgeRestriction{
			{AgeRestrictionID: 1, Code: "G", Description: "General audiences"},
			{AgeRestrictionID: 2, Code: "PG", Description: "Parental guidance recommended"},
			{AgeRestrictionID: 3, Code: "M", Description: "Mature audiences"},
			{AgeRestrictionID: 4, Code: "R18+", Description: "Restricted to adults"},
		},
		showTypes: []catalog.TypeLookup{
			{TypeID: 1, ShowType: "Comedy"},
			{TypeID: 2, ShowType: "Theatre"},
			{TypeID: 3, ShowType: "Cabaret"},
			{TypeID: 4, ShowType: "Music"},
		},
		venueTypes: []catalog.TypeLookup{
			{TypeID: 1, ShowType: "Tent"},
			{TypeID: 2, ShowType: "Theatre"},
			{TypeID: 3, ShowType: "Outdoor"},
		},
		roles: []catalog.Role{
			{RoleID: 1, RoleName: "Admin", CanCreate: true, CanRead: true, CanEdit: true, CanDelete: true},
			{RoleID: 2, RoleName: "Member", CanRead: true},
		},
	}

	spiegeltent := cs.addVenue(catalog.VenueInput{
		VenueName: "The Spiegeltent", TypeID: 1, MaxCapacity: 350, IsAccessible: true,
		Description: "Mirrored tent in the festival garden", ContactEmail: "box@spiegeltent.test",
	})
	hall := cs.addVenue(catalog.VenueInput{
		VenueName: "Town Hall", TypeID: 2, MaxCapacity: 800, IsAccessible: true,
		Description: "Main stage", ContactEmail: "events@townhall.test",
	})
	cs.addShow(catalog.ShowInput{
		ShowName: "Late Night Cabaret", VenueID: spiegeltent.VenueID, ShowTypeID: 3, AgeRestrictionID: 3,
		StartDate: "2026-02-14T21:30:00", EndDate: "2026-03-15T23:00:00", TicketTypeID: utils.Ptr(1), Active: true,
	})
	cs.addShow(catalog.ShowInput{
		ShowName: "Puppet Hamlet", VenueID: hall.VenueID, ShowTypeID: 2, AgeRestrictionID: 2,
		StartDate: "2026-02-20T14:00:00", EndDate: "2026-02-28T16:00:00", Active: true,
	})
	return cs
}

func (cs *catalogStore) listShows() []catalog.Show {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	shows := make([]catalog.Show, 0, len(cs.shows))
	for _, v := range cs.shows {
		shows = append(shows, v)
	}
	sort.Slice(shows, func(i, j int) bool { return shows[i].ShowID < shows[j].ShowID })
	return shows
}

func (cs *catalogStore) getShow(id int) (catalog.Show, error) {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	show, ok := cs.shows[id]
	if !ok {
		return catalog.Show{}, errors.ErrNotFound
	}
	return show, nil
}

func (cs *catalogStore) addShow(in catalog.ShowInput) catalog.Show {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.nextShowID++
	show := cs.buildShow(cs.nextShowID, in)
	cs.shows[show.ShowID] = show
	return show
}

func (cs *catalogStore) updateShow(id int, in catalog.ShowInput) (catalog.Show, error) {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	if _, ok := cs.shows[id]; !ok {
		return catalog.Show{}, errors.ErrNotFound
	}
	show := cs.buildShow(id, in)
	cs.shows[id] = show
	return show, nil
}

func (cs *catalogStore) deleteShow(id int) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	if _, ok := cs.shows[id]; !ok {
		return errors.ErrNotFound
	}
	delete(cs.shows, id)
	return nil
}

// buildShow fills the denormalised names. The caller holds the lock.
func (cs *catalogStore) buildShow(id int, in catalog.ShowInput) catalog.Show {
	show := catalog.Show{
		ShowID:           id,
		ShowName:         in.ShowName,
		VenueID:          in.VenueID,
		ShowTypeID:       in.ShowTypeID,
		Description:      in.Description,
		AgeRestrictionID: in.AgeRestrictionID,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		TicketTypeID:     in.TicketTypeID,
		ImagesURL:        in.ImagesURL,
		VideosURL:        in.VideosURL,
		Active:           in.Active,
	}
	if venue, ok := cs.venues[in.VenueID]; ok {
		show.VenueName = venue.VenueName
	}
	for _, t := range cs.showTypes {
		if t.TypeID == in.ShowTypeID {
			show.ShowType = t.ShowType
		}
	}
	for _, a := range cs.ageRestrictions {
		if a.AgeRestrictionID == in.AgeRestrictionID {
			show.AgeRestrictionCode = a.Code
			show.WarningDescription = a.Description
		}
	}
	if in.TicketTypeID != nil {
		show.TicketTypeName = "General Admission"
	}
	return show
}

func (cs *catalogStore) listVenues() []catalog.Venue {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	venues := make([]catalog.Venue, 0, len(cs.venues))
	for _, v := range cs.venues {
		venues = append(venues, v)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].VenueID < venues[j].VenueID })
	return venues
}

func (cs *catalogStore) getVenue(id int) (catalog.Venue, error) {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	venue, ok := cs.venues[id]
	if !ok {
		return catalog.Venue{}, errors.ErrNotFound
	}
	return venue, nil
}

func (cs *catalogStore) addVenue(in catalog.VenueInput) catalog.Venue {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.nextVenueID++
	venue := buildVenue(cs.nextVenueID, in)
	cs.venues[venue.VenueID] = venue
	return venue
}

func (cs *catalogStore) updateVenue(id int, in catalog.VenueInput) (catalog.Venue, error) {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	if _, ok := cs.venues[id]; !ok {
		return catalog.Venue{}, errors.ErrNotFound
	}
	venue := buildVenue(id, in)
	cs.venues[id] = venue
	return venue, nil
}

// deleteVenue refuses to remove a venue that still hosts shows.
func (cs *catalogStore) deleteVenue(id int) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	if _, ok := cs.venues[id]; !ok {
		return errors.ErrNotFound
	}
	for _, show := range cs.shows {
		if show.VenueID == id {
			return errors.Wrapf(errors.ErrConflict, "venue %d hosts show %d", id, show.ShowID)
		}
	}
	delete(cs.venues, id)
	return nil
}

func buildVenue(id int, in catalog.VenueInput) catalog.Venue {
	return catalog.Venue{
		VenueID:      id,
		VenueName:    in.VenueName,
		TypeID:       in.TypeID,
		MaxCapacity:  in.MaxCapacity,
		Description:  in.Description,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		IsAccessible: in.IsAccessible,
		VenueURL:     in.VenueURL,
		LocationID:   in.LocationID,
	}
}
