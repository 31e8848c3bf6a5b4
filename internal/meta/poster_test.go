package meta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestRPDBPosterURL(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		ids       MediaIDs
		language  string
		key       string
		want      string
	}{
		{
			name:      "movie via tmdb",
			mediaType: TypeMovie,
			ids:       MediaIDs{TMDBID: 603},
			language:  "en-US",
			key:       "t2-somekey",
			want:      "https://api.ratingposterdb.com/t2-somekey/tmdb/poster-default/movie-603.jpg?fallback=true",
		},
		{
			name:      "series prefers tvdb",
			mediaType: TypeSeries,
			ids:       MediaIDs{TMDBID: 1396, TVDBID: 81189},
			language:  "en-US",
			key:       "t1-somekey",
			want:      "https://api.ratingposterdb.com/t1-somekey/tvdb/poster-default/81189.jpg?fallback=true",
		},
		{
			name:      "series falls back to tmdb",
			mediaType: TypeSeries,
			ids:       MediaIDs{TMDBID: 1396},
			language:  "en-US",
			key:       "t1-somekey",
			want:      "https://api.ratingposterdb.com/t1-somekey/tmdb/poster-default/series-1396.jpg?fallback=true",
		},
		{
			name:      "paid tier adds language",
			mediaType: TypeMovie,
			ids:       MediaIDs{TMDBID: 603},
			language:  "pt-BR",
			key:       "t2-somekey",
			want:      "https://api.ratingposterdb.com/t2-somekey/tmdb/poster-default/movie-603.jpg?fallback=true&lang=pt",
		},
		{
			name:      "free tier never adds language",
			mediaType: TypeMovie,
			ids:       MediaIDs{TMDBID: 603},
			language:  "pt-BR",
			key:       "t0-somekey",
			want:      "https://api.ratingposterdb.com/t0-somekey/tmdb/poster-default/movie-603.jpg?fallback=true",
		},
		{
			name:      "no usable id",
			mediaType: TypeMovie,
			ids:       MediaIDs{TVDBID: 81189},
			language:  "en-US",
			key:       "t2-somekey",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RPDBPosterURL(tt.mediaType, tt.ids, tt.language, tt.key)
			if got != tt.want {
				t.Errorf("RPDBPosterURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPosterResolver_Resolve(t *testing.T) {
	resolver := NewPosterResolver(zerolog.Nop())

	t.Run("no key returns fallback", func(t *testing.T) {
		got := resolver.Resolve(context.Background(), TypeMovie, MediaIDs{TMDBID: 603}, "https://fallback.example/p.jpg", "en-US", "")
		if got != "https://fallback.example/p.jpg" {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("existing premium poster wins", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodHead {
				t.Errorf("expected HEAD, got %s", r.Method)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		if !resolver.exists(context.Background(), server.URL+"/poster.jpg") {
			t.Error("expected probe to find the poster")
		}
	})

	t.Run("redirect counts as absent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/placeholder.jpg", http.StatusFound)
		}))
		defer server.Close()

		if resolver.exists(context.Background(), server.URL+"/poster.jpg") {
			t.Error("redirected probe should count as absent")
		}
	})

	t.Run("malformed url", func(t *testing.T) {
		if resolver.exists(context.Background(), "not a url") {
			t.Error("malformed URL should count as absent")
		}
	})
}

func TestPosterProxyURL(t *testing.T) {
	got := posterProxyURL("https://addon.example.com", TypeMovie, "tmdb:603",
		"https://image.tmdb.org/t/p/w500/matrix.jpg", "en-US", "t2-somekey")
	want := "https://addon.example.com/poster/movie/tmdb:603?fallback=https%3A%2F%2Fimage.tmdb.org%2Ft%2Fp%2Fw500%2Fmatrix.jpg&lang=en-US&key=t2-somekey"
	if got != want {
		t.Errorf("posterProxyURL() = %q, want %q", got, want)
	}
}

func TestBlurredImageURL(t *testing.T) {
	got := blurredImageURL("https://addon.example.com", "https://artworks.thetvdb.com/banners/ep.jpg")
	want := "https://addon.example.com/api/image/blur?url=https%3A%2F%2Fartworks.thetvdb.com%2Fbanners%2Fep.jpg"
	if got != want {
		t.Errorf("blurredImageURL() = %q, want %q", got, want)
	}
}
