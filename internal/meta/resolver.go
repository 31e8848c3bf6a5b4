package meta

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// resolveMovieID turns a catalog identifier into a TMDB movie id.
// Accepted forms are "tmdb:<id>" and IMDb "tt..." ids; anything else is a
// resolution error, including bare numeric ids whose namespace is ambiguous.
func (s *Service) resolveMovieID(ctx context.Context, id string) (int, error) {
	switch {
	case strings.HasPrefix(id, "tmdb:"):
		tmdbID, err := strconv.Atoi(strings.TrimPrefix(id, "tmdb:"))
		if err != nil {
			return 0, &ResolutionError{ID: id, Reason: "malformed tmdb id"}
		}
		return tmdbID, nil

	case strings.HasPrefix(id, "tt"):
		found, err := s.tmdb.Find(ctx, id)
		if err != nil {
			return 0, &FetchError{ID: id, Err: fmt.Errorf("finding by imdb id: %w", err)}
		}
		if len(found.MovieResults) == 0 {
			return 0, &NotFoundError{ID: id}
		}
		return found.MovieResults[0].ID, nil

	default:
		return 0, &ResolutionError{ID: id, Reason: "unrecognized movie id namespace"}
	}
}

// resolveSeriesID turns a catalog identifier into a TVDB series id. TVDB
// ids pass through; TMDB and IMDb ids are cross-resolved via TMDB's
// external-id endpoint, which may legitimately have no TVDB mapping.
func (s *Service) resolveSeriesID(ctx context.Context, id string) (int, error) {
	if strings.HasPrefix(id, "tvdb:") {
		tvdbID, err := strconv.Atoi(strings.TrimPrefix(id, "tvdb:"))
		if err != nil {
			return 0, &ResolutionError{ID: id, Reason: "malformed tvdb id"}
		}
		return tvdbID, nil
	}

	var tmdbID int
	switch {
	case strings.HasPrefix(id, "tmdb:"):
		n, err := strconv.Atoi(strings.TrimPrefix(id, "tmdb:"))
		if err != nil {
			return 0, &ResolutionError{ID: id, Reason: "malformed tmdb id"}
		}
		tmdbID = n

	case strings.HasPrefix(id, "tt"):
		found, err := s.tmdb.Find(ctx, id)
		if err != nil {
			return 0, &FetchError{ID: id, Err: fmt.Errorf("finding by imdb id: %w", err)}
		}
		if len(found.TVResults) == 0 {
			return 0, &NotFoundError{ID: id}
		}
		tmdbID = found.TVResults[0].ID

	default:
		return 0, &ResolutionError{ID: id, Reason: "unrecognized series id namespace"}
	}

	external, err := s.tmdb.GetTVExternalIDs(ctx, tmdbID)
	if err != nil {
		return 0, &FetchError{ID: id, Err: fmt.Errorf("fetching external ids: %w", err)}
	}
	if external.TvdbID == 0 {
		return 0, &ResolutionError{ID: id, Reason: "no tvdb mapping for series"}
	}
	return external.TvdbID, nil
}
