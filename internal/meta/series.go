package meta

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/meta/tvdb"
)

// buildSeriesMeta resolves the identifier to a TVDB series and assembles
// the record from the extended payload plus the translated episode list.
// Both series fetches are required; logo and ratings degrade.
func (s *Service) buildSeriesMeta(ctx context.Context, log zerolog.Logger, req MetaRequest) (*Meta, error) {
	tvdbID, err := s.resolveSeriesID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	langBase, _, _ := strings.Cut(req.Language, "-")
	lang3 := s.languages.To3LetterCode(langBase)

	var (
		wg          sync.WaitGroup
		show        *tvdb.SeriesExtended
		episodes    []tvdb.Episode
		showErr     error
		episodesErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		show, showErr = s.tvdb.GetSeriesExtended(ctx, tvdbID)
	}()
	go func() {
		defer wg.Done()
		episodes, episodesErr = s.tvdb.GetSeriesEpisodes(ctx, tvdbID, lang3)
	}()
	wg.Wait()
	if showErr != nil {
		return nil, &FetchError{ID: req.ID, Err: showErr}
	}
	if episodesErr != nil {
		return nil, &FetchError{ID: req.ID, Err: episodesErr}
	}

	name := pickTranslation(show.Translations.NameTranslations, lang3, func(t tvdb.Translation) string { return t.Name }, show.Name)
	overview := pickTranslation(show.Translations.OverviewTranslations, lang3, func(t tvdb.Translation) string { return t.Overview }, show.Overview)

	imdbID := remoteID(show.RemoteIDs, tvdb.SourceIMDB)
	tmdbRemoteID := remoteID(show.RemoteIDs, tvdb.SourceTMDB)

	var (
		logoWG  sync.WaitGroup
		logoURL string
		rating  string
	)
	logoWG.Add(2)
	go func() {
		defer logoWG.Done()
		url, err := s.logo.GetSeriesLogo(ctx, show.ID, req.Language, show.OriginalLanguage)
		if err != nil {
			log.Debug().Err(err).Msg("No series logo available")
			return
		}
		logoURL = url
	}()
	go func() {
		defer logoWG.Done()
		if imdbID == "" {
			return
		}
		value, err := s.rating.GetRating(ctx, imdbID, TypeSeries)
		if err != nil {
			log.Warn().Err(err).Msg("External rating lookup failed")
			return
		}
		rating = value
	}()
	logoWG.Wait()

	if rating == "" {
		if show.Score > 0 {
			rating = fmt.Sprintf("%.1f", show.Score)
		} else {
			rating = "N/A"
		}
	}

	credits := CreditsFromSeries(show.Characters)
	castLimit, castLimited := req.Prefs.ResolvedCastCount()

	fallbackPoster := show.Image
	if fallbackPoster == "" {
		fallbackPoster = s.tvdb.ImageBaseURL() + "/banners/images/missing/series.jpg"
	}
	poster := fallbackPoster
	if req.Prefs.RPDBKey != "" {
		poster = posterProxyURL(s.hostName, TypeSeries, fmt.Sprintf("tvdb:%d", show.ID), fallbackPoster, req.Language, req.Prefs.RPDBKey)
	}

	background := ""
	for _, art := range show.Artworks {
		if art.Type == tvdb.ArtworkTypeBackground {
			background = art.Image
			break
		}
	}

	var released *time.Time
	if t, err := time.Parse("2006-01-02", show.FirstAired); err == nil {
		released = &t
	}

	var writers []string
	for _, company := range show.Companies.Production {
		writers = append(writers, company.Name)
	}
	var genres []string
	for _, g := range show.Genres {
		genres = append(genres, g.Name)
	}

	recordID := fmt.Sprintf("tvdb:%d", show.ID)
	if tmdbRemoteID != "" {
		recordID = "tmdb:" + tmdbRemoteID
	}

	return &Meta{
		ID:            recordID,
		Type:          TypeSeries,
		Name:          name,
		ImdbID:        imdbID,
		Slug:          Slug(TypeSeries, name, imdbID),
		Genres:        genres,
		Description:   overview,
		Writer:        strings.Join(writers, ", "),
		Year:          show.Year,
		Released:      released,
		Runtime:       FormatRuntime(show.AverageRuntime),
		Status:        show.Status.Name,
		Country:       show.OriginalCountry,
		ImdbRating:    rating,
		Poster:        poster,
		Background:    background,
		Logo:          secureURL(logoURL),
		Videos:        s.buildEpisodeVideos(episodes, imdbID, show.ID, req.Prefs.HideEpisodeThumbnails),
		Links:         buildLinks(rating, imdbID, name, TypeSeries, genres, credits, castLimit, castLimited, s.hostName, req.PrefsRaw),
		BehaviorHints: BehaviorHints{DefaultVideoID: nil, HasScheduledVideos: true},
		AppExtras:     AppExtras{Cast: CastMembers(credits, castLimit, castLimited)},
	}, nil
}

// buildEpisodeVideos maps the translated episode list into video entries.
// Episode ids prefer the IMDb namespace so clients can match streams, with
// a tvdb fallback for series that never got an IMDb id.
func (s *Service) buildEpisodeVideos(episodes []tvdb.Episode, imdbID string, tvdbID int, hideThumbnails bool) []Video {
	idPrefix := imdbID
	if idPrefix == "" {
		idPrefix = fmt.Sprintf("tvdb%d", tvdbID)
	}

	now := time.Now()
	videos := make([]Video, 0, len(episodes))
	for _, ep := range episodes {
		thumbnail := ""
		if ep.Image != "" {
			thumbnail = ep.Image
			if !strings.HasPrefix(thumbnail, "http") {
				thumbnail = s.tvdb.ImageBaseURL() + thumbnail
			}
			if hideThumbnails {
				thumbnail = blurredImageURL(s.hostName, thumbnail)
			}
		}

		title := ep.Name
		if title == "" {
			title = fmt.Sprintf("Episode %d", ep.Number)
		}

		var released *time.Time
		available := false
		if t, err := time.Parse("2006-01-02", ep.Aired); err == nil {
			released = &t
			available = t.Before(now)
		}

		videos = append(videos, Video{
			ID:        fmt.Sprintf("%s:%d:%d", idPrefix, ep.SeasonNumber, ep.Number),
			Title:     title,
			Season:    ep.SeasonNumber,
			Episode:   ep.Number,
			Thumbnail: thumbnail,
			Overview:  ep.Overview,
			Released:  released,
			Available: available,
		})
	}
	return videos
}

// pickTranslation walks the fallback chain: requested language, English,
// then the payload's untranslated value.
func pickTranslation(translations []tvdb.Translation, lang3 string, value func(tvdb.Translation) string, fallback string) string {
	for _, lang := range []string{lang3, "eng"} {
		for _, t := range translations {
			if t.Language == lang && value(t) != "" {
				return value(t)
			}
		}
	}
	return fallback
}

// remoteID finds the cross-reference id for a source, tolerating the
// ".com"-suffixed source names older records carry.
func remoteID(ids []tvdb.RemoteID, source string) string {
	for _, id := range ids {
		if id.SourceName == source || id.SourceName == source+".com" {
			return id.ID
		}
	}
	return ""
}
