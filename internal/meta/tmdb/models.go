package tmdb

// FindResponse is the response from the /find external-id lookup.
type FindResponse struct {
	MovieResults []FindResult `json:"movie_results"`
	TVResults    []FindResult `json:"tv_results"`
}

// FindResult is one match from the /find lookup.
type FindResult struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// MovieDetails is the extended movie payload
// (append_to_response=videos,credits,external_ids).
type MovieDetails struct {
	ID                  int                 `json:"id"`
	Title               string              `json:"title"`
	OriginalLanguage    string              `json:"original_language"`
	Overview            string              `json:"overview"`
	ReleaseDate         string              `json:"release_date"`
	Runtime             int                 `json:"runtime"`
	VoteAverage         float64             `json:"vote_average"`
	PosterPath          string              `json:"poster_path"`
	BackdropPath        string              `json:"backdrop_path"`
	Genres              []Genre             `json:"genres"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	Videos              VideoList           `json:"videos"`
	Credits             Credits             `json:"credits"`
	ExternalIDs         *ExternalIDs        `json:"external_ids"`
}

// Genre is a TMDB genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCountry is a movie production country.
type ProductionCountry struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// VideoList wraps the appended videos payload.
type VideoList struct {
	Results []Video `json:"results"`
}

// Video is trailer/clip metadata.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Credits is the appended credits payload.
type Credits struct {
	Cast []CastEntry `json:"cast"`
	Crew []CrewEntry `json:"crew"`
}

// CastEntry is one cast credit.
type CastEntry struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewEntry is one crew credit.
type CrewEntry struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// ListItem is one element of a paginated discover/list payload.
type ListItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
}

// ExternalIDs holds cross-references to other identifier namespaces.
type ExternalIDs struct {
	ImdbID string `json:"imdb_id"`
	TvdbID int    `json:"tvdb_id"`
}

// ErrorResponse is an error from the TMDB API.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
