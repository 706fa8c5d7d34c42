package models

// ContentFilter narrows a listing. Placeholders created by the upcoming flag
// are hidden unless IncludePlaceholders is set. Language is an exact
// original_language code such as "kn".
type ContentFilter struct {
	TitleContains       string
	Genre               string
	Language            string
	IncludePlaceholders bool
}

// Page is one page of a listing plus what the client needs to paginate.
type Page[T any] struct {
	Results     []T   `json:"results"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

type GenreCount struct {
	Name  string `json:"name" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

type FooterStats struct {
	TotalMovies int64 `json:"totalMovies"`
	TotalSeries int64 `json:"totalSeries"`
	TotalHDTV   int64 `json:"totalHdtv"`
	TotalTitles int64 `json:"totalTitles"`
}

// SearchResult groups matches per collection.
type SearchResult struct {
	Movies   []ContentRecord `json:"movies"`
	Series   []ContentRecord `json:"series"`
	HDTVRips []ContentRecord `json:"hdtvRips"`
}
