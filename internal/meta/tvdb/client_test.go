package tvdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.TVDBConfig{
		APIKey:       "test-api-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://artworks.thetvdb.com",
		Timeout:      5,
	}
	client := NewClient(cfg, zerolog.Nop())
	// Pre-set a valid token to skip authentication in tests
	client.token = "test-token"
	client.tokenExpiry = time.Now().Add(24 * time.Hour)
	return client
}

func TestClient_IsConfigured(t *testing.T) {
	if NewClient(config.TVDBConfig{APIKey: "k"}, zerolog.Nop()).IsConfigured() != true {
		t.Error("IsConfigured() = false with key set")
	}
	if NewClient(config.TVDBConfig{}, zerolog.Nop()).IsConfigured() != false {
		t.Error("IsConfigured() = true with no key")
	}
}

func TestClient_Authenticate(t *testing.T) {
	loginCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			loginCalls++
			var req LoginRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.APIKey != "test-api-key" {
				t.Errorf("login apikey = %q", req.APIKey)
			}
			resp := LoginResponse{Status: "success"}
			resp.Data.Token = "issued-token"
			json.NewEncoder(w).Encode(resp)
		case "/series/81189/extended":
			if auth := r.Header.Get("Authorization"); auth != "Bearer issued-token" {
				t.Errorf("Authorization = %q", auth)
			}
			json.NewEncoder(w).Encode(SeriesExtendedResponse{
				Status: "success",
				Data:   SeriesExtended{ID: 81189, Name: "Breaking Bad"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cfg := config.TVDBConfig{APIKey: "test-api-key", BaseURL: server.URL, Timeout: 5}
	client := NewClient(cfg, zerolog.Nop())

	// Two calls, token fetched once.
	for i := 0; i < 2; i++ {
		if _, err := client.GetSeriesExtended(context.Background(), 81189); err != nil {
			t.Fatalf("GetSeriesExtended() error = %v", err)
		}
	}
	if loginCalls != 1 {
		t.Errorf("login calls = %d, want 1", loginCalls)
	}
}

func TestClient_GetSeriesExtended(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/series/81189/extended" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if meta := r.URL.Query().Get("meta"); meta != "translations" {
			t.Errorf("meta = %q, want %q", meta, "translations")
		}

		json.NewEncoder(w).Encode(SeriesExtendedResponse{
			Status: "success",
			Data: SeriesExtended{
				ID:       81189,
				Name:     "Breaking Bad",
				Year:     "2008",
				Score:    8.9,
				Image:    "https://artworks.thetvdb.com/banners/posters/81189-10.jpg",
				Status:   SeriesStatus{Name: "Ended"},
				Genres:   []Genre{{ID: 1, Name: "Drama"}},
				Artworks: []Artwork{{Image: "https://artworks.thetvdb.com/banners/fanart/81189-1.jpg", Type: ArtworkTypeBackground}},
				RemoteIDs: []RemoteID{
					{ID: "tt0903747", SourceName: SourceIMDB},
					{ID: "1396", SourceName: SourceTMDB},
				},
				Translations: Translations{
					NameTranslations: []Translation{{Language: "eng", Name: "Breaking Bad"}},
				},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	series, err := client.GetSeriesExtended(context.Background(), 81189)
	if err != nil {
		t.Fatalf("GetSeriesExtended() error = %v", err)
	}

	if series.Name != "Breaking Bad" {
		t.Errorf("Name = %q, want %q", series.Name, "Breaking Bad")
	}
	if len(series.RemoteIDs) != 2 {
		t.Fatalf("RemoteIDs length = %d, want 2", len(series.RemoteIDs))
	}
	if series.Translations.NameTranslations[0].Language != "eng" {
		t.Errorf("translation language = %q", series.Translations.NameTranslations[0].Language)
	}
}

func TestClient_GetSeriesEpisodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/series/81189/episodes/default/eng" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var resp EpisodesResponse
		resp.Status = "success"
		resp.Data.Episodes = []Episode{
			{ID: 349232, Name: "Pilot", Aired: "2008-01-20", SeasonNumber: 1, Number: 1, Image: "/banners/episodes/81189/349232.jpg"},
			{ID: 349233, Name: "", Aired: "2008-01-27", SeasonNumber: 1, Number: 2},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server)
	episodes, err := client.GetSeriesEpisodes(context.Background(), 81189, "eng")
	if err != nil {
		t.Fatalf("GetSeriesEpisodes() error = %v", err)
	}

	if len(episodes) != 2 {
		t.Fatalf("episodes length = %d, want 2", len(episodes))
	}
	if episodes[0].Name != "Pilot" || episodes[0].SeasonNumber != 1 {
		t.Errorf("episodes[0] = %+v", episodes[0])
	}
}

func TestClient_GetSeriesExtended_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetSeriesExtended(context.Background(), 1)
	if !errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("GetSeriesExtended() error = %v, want %v", err, ErrSeriesNotFound)
	}
}

func TestClient_NoAPIKey(t *testing.T) {
	client := NewClient(config.TVDBConfig{}, zerolog.Nop())

	if _, err := client.GetSeriesExtended(context.Background(), 1); !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("GetSeriesExtended() error = %v, want %v", err, ErrAPIKeyMissing)
	}
	if _, err := client.GetSeriesEpisodes(context.Background(), 1, "eng"); !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("GetSeriesEpisodes() error = %v, want %v", err, ErrAPIKeyMissing)
	}
}
