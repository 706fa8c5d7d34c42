package models

import "time"

// Kind selects the collection a record lives in and the TMDB endpoint used
// to describe it.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
	KindHDTV   Kind = "hdtv"
)

func (k Kind) Collection() string {
	switch k {
	case KindSeries:
		return "series"
	case KindHDTV:
		return "hdtv"
	default:
		return "movies"
	}
}

// TMDBPath is the TMDB resource type; HDTV rips are described as tv shows.
func (k Kind) TMDBPath() string {
	if k == KindMovie {
		return "movie"
	}
	return "tv"
}

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindMovie, KindSeries, KindHDTV:
		return Kind(s), true
	case "tv":
		return KindSeries, true
	}
	return "", false
}

// Descriptor is the normalized metadata copied into a record, either from
// TMDB or supplied inline for custom entries.
type Descriptor struct {
	Title       string   `json:"title" bson:"title"`
	Overview    string   `json:"overview" bson:"overview"`
	PosterPath  string   `json:"poster_path" bson:"poster_path"`
	ReleaseDate string   `json:"release_date" bson:"release_date"`
	Genres      []string `json:"genres" bson:"genres"`
	Language    string   `json:"original_language,omitempty" bson:"original_language,omitempty"`
}

type Trending struct {
	IsTrending    bool `json:"isTrending" bson:"isTrending"`
	TrendingOrder *int `json:"trendingOrder" bson:"trendingOrder"`
}

type Upcoming struct {
	IsUpcoming    bool       `json:"isUpcoming" bson:"isUpcoming"`
	UpcomingOrder *int       `json:"upcomingOrder" bson:"upcomingOrder"`
	OTTRelease    *time.Time `json:"ott_release" bson:"ott_release"`
}

type Version struct {
	Quality  string `json:"quality" bson:"quality"`
	FileLink string `json:"fileLink" bson:"fileLink"`
}

type Season struct {
	SeasonNumber int       `json:"seasonNumber" bson:"seasonNumber"`
	Language     string    `json:"language" bson:"language"`
	Versions     []Version `json:"versions" bson:"versions"`
}

// ContentRecord is one movie, series or HDTV document.
type ContentRecord struct {
	ID     ContentID `json:"id" bson:"_id"`
	Kind   Kind      `json:"kind" bson:"kind"`
	TMDBID *int      `json:"tmdbID,omitempty" bson:"tmdbID,omitempty"`

	Descriptor `bson:",inline"`
	TitleKey   string `json:"-" bson:"titleKey"`

	FileLink string   `json:"fileLink,omitempty" bson:"fileLink,omitempty"`
	Seasons  []Season `json:"seasons,omitempty" bson:"seasons,omitempty"`

	Order    int      `json:"order" bson:"order"`
	Pinned   bool     `json:"pinned" bson:"pinned"`
	Clicks   int64    `json:"clicks" bson:"clicks"`
	Trending Trending `json:"trending" bson:"trending"`
	Upcoming Upcoming `json:"upcoming" bson:"upcoming"`

	IsCustom    bool  `json:"isCustom" bson:"isCustom"`
	Placeholder bool  `json:"placeholder,omitempty" bson:"placeholder"`
	Revision    int64 `json:"-" bson:"revision"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Top10Entry is one row of the ranked list; it references a movie record.
type Top10Entry struct {
	ContentID ContentID `json:"id" bson:"_id"`
	Rank      int       `json:"rank" bson:"rank"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// RankedContent is a Top10Entry joined with its movie.
type RankedContent struct {
	ContentRecord `bson:",inline"`
	Rank          int `json:"rank" bson:"rank"`
}
