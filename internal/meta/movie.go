package meta

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// buildMovieMeta resolves the identifier to a TMDB movie, fetches the
// extended payload and assembles the record. The logo and external rating
// are fetched concurrently and degrade to TMDB-derived fallbacks.
func (s *Service) buildMovieMeta(ctx context.Context, log zerolog.Logger, req MetaRequest) (*Meta, error) {
	tmdbID, err := s.resolveMovieID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	details, err := s.tmdb.GetMovieDetails(ctx, tmdbID, req.Language)
	if err != nil {
		return nil, &FetchError{ID: req.ID, Err: err}
	}

	imdbID := ""
	if details.ExternalIDs != nil {
		imdbID = details.ExternalIDs.ImdbID
	}

	var (
		wg      sync.WaitGroup
		logoURL string
		rating  string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		url, err := s.logo.GetMovieLogo(ctx, details.ID, req.Language, details.OriginalLanguage)
		if err != nil {
			log.Debug().Err(err).Msg("No movie logo available")
			return
		}
		logoURL = url
	}()
	go func() {
		defer wg.Done()
		if imdbID == "" {
			return
		}
		value, err := s.rating.GetRating(ctx, imdbID, TypeMovie)
		if err != nil {
			log.Warn().Err(err).Msg("External rating lookup failed")
			return
		}
		rating = value
	}()
	wg.Wait()

	if rating == "" {
		if details.VoteAverage > 0 {
			rating = fmt.Sprintf("%.1f", details.VoteAverage)
		} else {
			rating = "N/A"
		}
	}

	credits := CreditsFromMovie(details.Credits)
	castLimit, castLimited := req.Prefs.ResolvedCastCount()

	fallbackPoster := s.tmdb.GetImageURL(details.PosterPath, "w500")
	poster := fallbackPoster
	if req.Prefs.RPDBKey != "" {
		poster = posterProxyURL(s.hostName, TypeMovie, fmt.Sprintf("tmdb:%d", details.ID), fallbackPoster, req.Language, req.Prefs.RPDBKey)
	}

	var released *time.Time
	if t, err := time.Parse("2006-01-02", details.ReleaseDate); err == nil {
		released = &t
	}
	year := ""
	if len(details.ReleaseDate) >= 4 {
		year = details.ReleaseDate[:4]
	}

	defaultVideoID := imdbID
	if defaultVideoID == "" {
		defaultVideoID = fmt.Sprintf("tmdb:%d", details.ID)
	}

	return &Meta{
		ID:             fmt.Sprintf("tmdb:%d", details.ID),
		Type:           TypeMovie,
		Name:           details.Title,
		ImdbID:         imdbID,
		Slug:           Slug(TypeMovie, details.Title, imdbID),
		Genres:         GenreNames(details.Genres),
		Description:    details.Overview,
		Director:       strings.Join(Directors(credits), ", "),
		Writer:         strings.Join(Writers(credits), ", "),
		Year:           year,
		Released:       released,
		Runtime:        FormatRuntime(details.Runtime),
		Country:        CountryNames(details.ProductionCountries),
		ImdbRating:     rating,
		Poster:         poster,
		Background:     s.tmdb.GetImageURL(details.BackdropPath, "original"),
		Logo:           secureURL(logoURL),
		Trailers:       Trailers(details.Videos.Results),
		TrailerStreams: TrailerStreams(details.Videos.Results),
		Links:          buildLinks(rating, imdbID, details.Title, TypeMovie, GenreNames(details.Genres), credits, castLimit, castLimited, s.hostName, req.PrefsRaw),
		BehaviorHints:  BehaviorHints{DefaultVideoID: &defaultVideoID, HasScheduledVideos: false},
		AppExtras:      AppExtras{Cast: CastMembers(credits, castLimit, castLimited)},
	}, nil
}
