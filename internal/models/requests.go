package models

import "time"

// ContentCreateRequest is the body of POST /api/{movies,series,hdtv}.
// Exactly one of TMDBID or CustomData must be supplied.
type ContentCreateRequest struct {
	TMDBID     int         `json:"tmdbID,omitempty" example:"603"`
	CustomData *Descriptor `json:"customData,omitempty"`
	FileLink   string      `json:"fileLink,omitempty"`
	Position   string      `json:"position,omitempty" example:"l"` // f|first|l|last
	Pinned     bool        `json:"pinned,omitempty"`
	Seasons    []Season    `json:"seasons,omitempty"` // series only
	Secret     string      `json:"secret,omitempty"`
}

// ContentUpdateRequest is the body of PUT /api/{movies,series,hdtv}/{id}.
//
//   - TMDBID: absent keeps the metadata source; a number re-points the record
//     (upgrading a custom entry); null detaches it and keeps the current
//     metadata.
//   - CustomData: replaces the metadata wholesale; null is ignored.
//   - FileLink: absent keeps; null clears (rejected for movie/hdtv).
//   - Position: absent or null keeps the order; f/l moves to an end.
//   - Pinned: absent or null keeps.
type ContentUpdateRequest struct {
	TMDBID     Optional[int]        `json:"tmdbID" swaggertype:"integer"`
	CustomData Optional[Descriptor] `json:"customData" swaggertype:"object"`
	FileLink   Optional[string]     `json:"fileLink" swaggertype:"string"`
	Position   Optional[string]     `json:"position" swaggertype:"string"`
	Pinned     Optional[bool]       `json:"pinned" swaggertype:"boolean"`
	Secret     string               `json:"secret,omitempty"`
}

// SeasonUpsertRequest sets one quality of one season/language of a series.
type SeasonUpsertRequest struct {
	SeasonNumber int    `json:"seasonNumber"`
	Language     string `json:"language"`
	Quality      string `json:"quality"`
	FileLink     string `json:"fileLink"`
	Secret       string `json:"secret,omitempty"`
}

type Top10Request struct {
	TMDBID int    `json:"tmdbID"`
	Rank   int    `json:"rank"`
	Unpin  bool   `json:"unpin,omitempty"`
	Secret string `json:"secret,omitempty"`
}

// FlagRequest sets trending/upcoming. Order defaults per flag; OTTRelease is
// only read for upcoming.
type FlagRequest struct {
	TMDBID     ContentID  `json:"tmdbID" swaggertype:"integer"`
	Order      *int       `json:"order,omitempty"`
	OTTRelease *time.Time `json:"ott_release,omitempty"`
	Secret     string     `json:"secret,omitempty"`
}

type CarouselCreateRequest struct {
	TMDBID    *int   `json:"tmdbID,omitempty"`
	Title     string `json:"title,omitempty"`
	ImagePath string `json:"imagePath"`
	ImageType string `json:"imageType,omitempty"`
	Position  string `json:"position,omitempty"`
	Secret    string `json:"secret,omitempty"`
}

// TokenRequest exchanges the shared admin secret for a bearer token.
type TokenRequest struct {
	Secret string `json:"secret"`
}
