package meta

import (
	"context"

	"github.com/aiometa/aiometa/internal/meta/tmdb"
	"github.com/aiometa/aiometa/internal/meta/tvdb"
)

// TMDBClient defines the TMDB operations the builders need.
type TMDBClient interface {
	IsConfigured() bool
	Find(ctx context.Context, imdbID string) (*tmdb.FindResponse, error)
	GetMovieDetails(ctx context.Context, id int, language string) (*tmdb.MovieDetails, error)
	GetTVExternalIDs(ctx context.Context, id int) (*tmdb.ExternalIDs, error)
	GetImageURL(path string, size string) string
}

// TVDBClient defines the TheTVDB operations the series builder needs.
type TVDBClient interface {
	IsConfigured() bool
	ImageBaseURL() string
	GetSeriesExtended(ctx context.Context, id int) (*tvdb.SeriesExtended, error)
	GetSeriesEpisodes(ctx context.Context, id int, language string) ([]tvdb.Episode, error)
}

// RatingClient fetches an external IMDb rating by id and media kind.
// An empty string with nil error means the source has no rating.
type RatingClient interface {
	GetRating(ctx context.Context, imdbID, mediaType string) (string, error)
}

// LogoClient fetches title logo art.
type LogoClient interface {
	GetMovieLogo(ctx context.Context, tmdbID int, language, originalLanguage string) (string, error)
	GetSeriesLogo(ctx context.Context, tvdbID int, language, originalLanguage string) (string, error)
}

// LanguageMapper converts 2-letter request language codes to the 3-letter
// codes translation sets are keyed with.
type LanguageMapper interface {
	To3LetterCode(code string) string
}
