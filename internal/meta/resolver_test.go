package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/meta/language"
	"github.com/aiometa/aiometa/internal/meta/tmdb"
)

func TestResolveMovieID(t *testing.T) {
	svc := NewServiceWithClients("", &fakeTMDB{
		findResponse: &tmdb.FindResponse{MovieResults: []tmdb.FindResult{{ID: 603}}},
	}, &fakeTVDB{}, &fakeRating{}, &fakeLogo{}, language.NewMapper(), zerolog.Nop())

	t.Run("tmdb prefix", func(t *testing.T) {
		id, err := svc.resolveMovieID(context.Background(), "tmdb:603")
		if err != nil || id != 603 {
			t.Errorf("resolveMovieID() = %d, %v", id, err)
		}
	})

	t.Run("imdb id", func(t *testing.T) {
		id, err := svc.resolveMovieID(context.Background(), "tt0133093")
		if err != nil || id != 603 {
			t.Errorf("resolveMovieID() = %d, %v", id, err)
		}
	})

	t.Run("malformed tmdb id", func(t *testing.T) {
		_, err := svc.resolveMovieID(context.Background(), "tmdb:abc")
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Errorf("expected ResolutionError, got %v", err)
		}
	})

	t.Run("bare numeric id", func(t *testing.T) {
		_, err := svc.resolveMovieID(context.Background(), "603")
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Errorf("expected ResolutionError, got %v", err)
		}
	})

	t.Run("unknown title", func(t *testing.T) {
		empty := NewServiceWithClients("", &fakeTMDB{findResponse: &tmdb.FindResponse{}},
			&fakeTVDB{}, &fakeRating{}, &fakeLogo{}, language.NewMapper(), zerolog.Nop())
		_, err := empty.resolveMovieID(context.Background(), "tt9999999")
		var nfErr *NotFoundError
		if !errors.As(err, &nfErr) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})
}

func TestResolveSeriesID(t *testing.T) {
	svc := NewServiceWithClients("", &fakeTMDB{
		findResponse: &tmdb.FindResponse{TVResults: []tmdb.FindResult{{ID: 1396}}},
		externalIDs:  &tmdb.ExternalIDs{TvdbID: 81189},
	}, &fakeTVDB{}, &fakeRating{}, &fakeLogo{}, language.NewMapper(), zerolog.Nop())

	t.Run("tvdb prefix passes through", func(t *testing.T) {
		id, err := svc.resolveSeriesID(context.Background(), "tvdb:81189")
		if err != nil || id != 81189 {
			t.Errorf("resolveSeriesID() = %d, %v", id, err)
		}
	})

	t.Run("tmdb id cross-resolves", func(t *testing.T) {
		id, err := svc.resolveSeriesID(context.Background(), "tmdb:1396")
		if err != nil || id != 81189 {
			t.Errorf("resolveSeriesID() = %d, %v", id, err)
		}
	})

	t.Run("imdb id cross-resolves", func(t *testing.T) {
		id, err := svc.resolveSeriesID(context.Background(), "tt0903747")
		if err != nil || id != 81189 {
			t.Errorf("resolveSeriesID() = %d, %v", id, err)
		}
	})

	t.Run("missing tvdb mapping", func(t *testing.T) {
		noMapping := NewServiceWithClients("", &fakeTMDB{externalIDs: &tmdb.ExternalIDs{}},
			&fakeTVDB{}, &fakeRating{}, &fakeLogo{}, language.NewMapper(), zerolog.Nop())
		_, err := noMapping.resolveSeriesID(context.Background(), "tmdb:1396")
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Errorf("expected ResolutionError, got %v", err)
		}
	})
}
