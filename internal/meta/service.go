package meta

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/config"
	"github.com/aiometa/aiometa/internal/logger"
	"github.com/aiometa/aiometa/internal/meta/fanart"
	"github.com/aiometa/aiometa/internal/meta/language"
	"github.com/aiometa/aiometa/internal/meta/omdb"
	"github.com/aiometa/aiometa/internal/meta/tmdb"
	"github.com/aiometa/aiometa/internal/meta/tvdb"
	"github.com/aiometa/aiometa/internal/preferences"
)

// MetaRequest describes one metadata lookup.
type MetaRequest struct {
	// Type is TypeMovie or TypeSeries.
	Type string
	// ID is the inbound identifier: "tt...", "tmdb:..." or "tvdb:...".
	ID string
	// Language is a BCP 47 request language such as "en-US" or "pt-BR".
	Language string
	// Prefs are the caller's decoded install preferences.
	Prefs preferences.Preferences
	// PrefsRaw is the still-encoded preference segment, carried into the
	// manifest deep links so they reproduce the caller's install.
	PrefsRaw string
}

// Service reconciles provider payloads into canonical metadata records.
type Service struct {
	tmdb      TMDBClient
	tvdb      TVDBClient
	rating    RatingClient
	logo      LogoClient
	languages LanguageMapper

	hostName string
	logger   zerolog.Logger
}

// NewService wires a service from configuration, building the real
// provider clients.
func NewService(cfg *config.Config, log *logger.Logger) *Service {
	return NewServiceWithClients(
		cfg.Addon.HostName,
		tmdb.NewClient(cfg.Metadata.TMDB, log.Logger),
		tvdb.NewClient(cfg.Metadata.TVDB, log.Logger),
		omdb.NewClient(cfg.Metadata.OMDB, log.Logger),
		fanart.NewClient(cfg.Metadata.Fanart, log.Logger),
		language.NewMapper(),
		log.Logger,
	)
}

// NewServiceWithClients wires a service from explicit collaborators.
func NewServiceWithClients(hostName string, tmdbClient TMDBClient, tvdbClient TVDBClient, rating RatingClient, logo LogoClient, languages LanguageMapper, log zerolog.Logger) *Service {
	return &Service{
		tmdb:      tmdbClient,
		tvdb:      tvdbClient,
		rating:    rating,
		logo:      logo,
		languages: languages,
		hostName:  hostName,
		logger:    log.With().Str("component", "meta").Logger(),
	}
}

// GetMeta builds the record for one request. Failures never surface as
// errors: clients render an empty detail page from a null record, so the
// response carries a nil Meta instead.
func (s *Service) GetMeta(ctx context.Context, req MetaRequest) *MetaResponse {
	log := s.logger.With().
		Str("request_id", uuid.NewString()).
		Str("type", req.Type).
		Str("id", req.ID).
		Str("language", req.Language).
		Logger()

	var (
		record *Meta
		err    error
	)
	switch req.Type {
	case TypeMovie:
		record, err = s.buildMovieMeta(ctx, log, req)
	case TypeSeries:
		record, err = s.buildSeriesMeta(ctx, log, req)
	default:
		log.Warn().Msg("Unknown media type requested")
		return &MetaResponse{Meta: nil}
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to build metadata record")
		return &MetaResponse{Meta: nil}
	}

	log.Debug().Str("name", record.Name).Msg("Built metadata record")
	return &MetaResponse{Meta: record}
}

// secureURL upgrades plain-http artwork URLs; providers occasionally hand
// out http links that mixed-content rules would block.
func secureURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http:") {
		return "https:" + strings.TrimPrefix(rawURL, "http:")
	}
	return rawURL
}
