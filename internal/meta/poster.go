package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const rpdbBaseURL = "https://api.ratingposterdb.com"

// MediaIDs carries the provider ids a premium poster can be keyed on.
type MediaIDs struct {
	TMDBID int
	TVDBID int
}

// RPDBPosterURL builds the RatingPosterDB poster URL for a record, or ""
// when the id set cannot address one. Free tiers (t0/t1) and English
// requests omit the lang parameter, which paid tiers use for localized
// posters.
func RPDBPosterURL(mediaType string, ids MediaIDs, language, rpdbKey string) string {
	tier, _, _ := strings.Cut(rpdbKey, "-")
	lang, _, _ := strings.Cut(language, "-")

	var idType, fullMediaID string
	switch {
	case mediaType == TypeMovie && ids.TMDBID != 0:
		idType = "tmdb"
		fullMediaID = fmt.Sprintf("movie-%d", ids.TMDBID)
	case mediaType == TypeSeries && ids.TVDBID != 0:
		idType = "tvdb"
		fullMediaID = fmt.Sprintf("%d", ids.TVDBID)
	case mediaType == TypeSeries && ids.TMDBID != 0:
		idType = "tmdb"
		fullMediaID = fmt.Sprintf("series-%d", ids.TMDBID)
	default:
		return ""
	}

	posterURL := fmt.Sprintf("%s/%s/%s/poster-default/%s.jpg?fallback=true", rpdbBaseURL, rpdbKey, idType, fullMediaID)
	if tier == "t0" || tier == "t1" || lang == "en" {
		return posterURL
	}
	return posterURL + "&lang=" + lang
}

// PosterResolver picks between a premium RatingPosterDB poster and a
// provider fallback, probing the premium URL before committing to it.
type PosterResolver struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewPosterResolver returns a resolver whose existence probes never follow
// redirects; RPDB redirects missing posters to a placeholder, which counts
// as absent.
func NewPosterResolver(logger zerolog.Logger) *PosterResolver {
	return &PosterResolver{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger.With().Str("component", "poster").Logger(),
	}
}

// Resolve returns the premium poster URL when a key is set and the poster
// exists upstream, and the fallback URL otherwise.
func (r *PosterResolver) Resolve(ctx context.Context, mediaType string, ids MediaIDs, fallbackURL, language, rpdbKey string) string {
	if rpdbKey == "" {
		return fallbackURL
	}
	premiumURL := RPDBPosterURL(mediaType, ids, language, rpdbKey)
	if premiumURL != "" && r.exists(ctx, premiumURL) {
		return premiumURL
	}
	return fallbackURL
}

func (r *PosterResolver) exists(ctx context.Context, rawURL string) bool {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warn().Err(err).Str("url", rawURL).Msg("Poster existence probe failed")
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// posterProxyURL routes the record's poster through the addon's own poster
// endpoint so clients fetch the premium-or-fallback decision lazily.
func posterProxyURL(hostName, mediaType, mediaID, fallbackURL, language, rpdbKey string) string {
	return fmt.Sprintf("%s/poster/%s/%s?fallback=%s&lang=%s&key=%s",
		hostName, mediaType, mediaID, url.QueryEscape(fallbackURL), language, rpdbKey)
}

// blurredImageURL routes an episode thumbnail through the addon's blur
// endpoint for spoiler-safe rendering.
func blurredImageURL(hostName, imageURL string) string {
	return fmt.Sprintf("%s/api/image/blur?url=%s", hostName, url.QueryEscape(imageURL))
}
