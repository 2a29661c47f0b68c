package catalog

type Show struct {
	ShowID             int    `json:"showId"`
	ShowName           string `json:"showName"`
	VenueID            int    `json:"venueId"`
	VenueName          string `json:"venueName"`
	ShowTypeID         int    `json:"showTypeId"`
	ShowType           string `json:"showType"`
	Description        string `json:"description"`
	AgeRestrictionID   int    `json:"ageRestrictionId"`
	AgeRestrictionCode string `json:"ageRestrictionCode"`
	WarningDescription string `json:"warningDescription"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	TicketTypeID       *int   `json:"ticketTypeId"`
	TicketTypeName     string `json:"ticketTypeName"`
	ImagesURL          string `json:"imagesUrl"`
	VideosURL          string `json:"videosUrl"`
	Active             bool   `json:"active"`
}

// ShowInput is the body for creating or updating a show.
type ShowInput struct {
	ShowName         string `json:"showName"`
	VenueID          int    `json:"venueId"`
	ShowTypeID       int    `json:"showTypeId"`
	Description      string `json:"description"`
	AgeRestrictionID int    `json:"ageRestrictionId"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	TicketTypeID     *int   `json:"ticketTypeId"`
	ImagesURL        string `json:"imagesUrl"`
	VideosURL        string `json:"videosUrl"`
	Active           bool   `json:"active"`
}

type AgeRestriction struct {
	AgeRestrictionID int    `json:"ageRestrictionId"`
	Code             string `json:"code"`
	Description      string `json:"description"`
}

// TypeLookup is a show or venue type.
type TypeLookup struct {
	TypeID   int    `json:"typeId"`
	ShowType string `json:"showType"`
}

type Venue struct {
	VenueID      int    `json:"venueId"`
	VenueName    string `json:"venueName"`
	TypeID       int    `json:"typeId"`
	MaxCapacity  int    `json:"maxCapacity"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	IsAccessible bool   `json:"isAccessible"`
	VenueURL     string `json:"venueUrl"`
	LocationID   int    `json:"locationId"`
}

type VenueInput struct {
	VenueName    string `json:"venueName"`
	TypeID       int    `json:"typeId"`
	MaxCapacity  int    `json:"maxCapacity"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	IsAccessible bool   `json:"isAccessible"`
	VenueURL     string `json:"venueUrl"`
	LocationID   int    `json:"locationId"`
}

type Role struct {
	RoleID    int    `json:"roleId"`
	RoleName  string `json:"roleName"`
	CanCreate bool   `json:"canCreate"`
	CanRead   bool   `json:"canRead"`
	CanEdit   bool   `json:"canEdit"`
	CanDelete bool   `json:"canDelete"`
}
