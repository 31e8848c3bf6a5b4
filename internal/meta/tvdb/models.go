package tvdb

// Artwork type codes used by TheTVDB series artwork lists.
const (
	ArtworkTypeBanner     = 1
	ArtworkTypePoster     = 2
	ArtworkTypeBackground = 3
)

// Remote-id source names as they appear in series payloads.
const (
	SourceIMDB = "IMDB"
	SourceTMDB = "TheMovieDB"
)

// LoginRequest is the request body for TVDB authentication.
type LoginRequest struct {
	APIKey string `json:"apikey"`
}

// LoginResponse is the response from TVDB authentication.
type LoginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token string `json:"token"`
	} `json:"data"`
}

// SeriesExtendedResponse is the response for an extended series record.
type SeriesExtendedResponse struct {
	Status string         `json:"status"`
	Data   SeriesExtended `json:"data"`
}

// SeriesExtended is the extended series payload, including translations,
// artworks, characters and remote ids.
type SeriesExtended struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Overview         string       `json:"overview"`
	Image            string       `json:"image"`
	Year             string       `json:"year"`
	Score            float64      `json:"score"`
	FirstAired       string       `json:"firstAired"`
	OriginalCountry  string       `json:"originalCountry"`
	OriginalLanguage string       `json:"originalLanguage"`
	AverageRuntime   int          `json:"averageRuntime"`
	Status           SeriesStatus `json:"status"`
	Genres           []Genre      `json:"genres"`
	RemoteIDs        []RemoteID   `json:"remoteIds"`
	Artworks         []Artwork    `json:"artworks"`
	Characters       []Character  `json:"characters"`
	Companies        Companies    `json:"companies"`
	Translations     Translations `json:"translations"`
}

// SeriesStatus represents the status of a series.
type SeriesStatus struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Genre represents a genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RemoteID represents an external identifier cross-reference.
type RemoteID struct {
	ID         string `json:"id"`
	Type       int    `json:"type"`
	SourceName string `json:"sourceName"`
}

// Artwork represents artwork for a series.
type Artwork struct {
	ID       int    `json:"id"`
	Image    string `json:"image"`
	Language string `json:"language"`
	Type     int    `json:"type"`
}

// Character is one entry of the series cast list. Name holds the character,
// PersonName the actor.
type Character struct {
	Name       string `json:"name"`
	PersonName string `json:"personName"`
	Image      string `json:"image"`
}

// Companies groups the companies attached to a series by role.
type Companies struct {
	Production []Company `json:"production"`
}

// Company is a production company.
type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Translations carries per-language name and overview variants.
type Translations struct {
	NameTranslations     []Translation `json:"nameTranslations"`
	OverviewTranslations []Translation `json:"overviewTranslations"`
}

// Translation is one localized name or overview.
type Translation struct {
	Language string `json:"language"`
	Name     string `json:"name,omitempty"`
	Overview string `json:"overview,omitempty"`
}

// EpisodesResponse is the response for the translated episode list.
type EpisodesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Episodes []Episode `json:"episodes"`
	} `json:"data"`
}

// Episode represents a TV episode.
type Episode struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Aired        string `json:"aired"`
	Overview     string `json:"overview"`
	Image        string `json:"image"`
	SeasonNumber int    `json:"seasonNumber"`
	Number       int    `json:"number"`
}
