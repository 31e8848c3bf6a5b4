package fanart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(config.FanartConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	}, zerolog.Nop())
}

func TestClient_GetMovieLogo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies/603" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(movieResponse{
			HDMovieLogo: []logoEntry{
				{URL: "http://assets.fanart.tv/logo-en.png", Lang: "en"},
				{URL: "http://assets.fanart.tv/logo-pt.png", Lang: "pt"},
			},
		})
	}))
	defer server.Close()

	logo, err := newTestClient(server).GetMovieLogo(context.Background(), 603, "pt-BR", "en")
	if err != nil {
		t.Fatalf("GetMovieLogo() error = %v", err)
	}
	if logo != "http://assets.fanart.tv/logo-pt.png" {
		t.Errorf("logo = %q, want the pt entry", logo)
	}
}

func TestClient_GetSeriesLogo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server).GetSeriesLogo(context.Background(), 81189, "en", "en")
	if !errors.Is(err, ErrNoLogo) {
		t.Errorf("GetSeriesLogo() error = %v, want %v", err, ErrNoLogo)
	}
}

func TestClient_NoAPIKey(t *testing.T) {
	client := NewClient(config.FanartConfig{}, zerolog.Nop())
	_, err := client.GetMovieLogo(context.Background(), 603, "en", "en")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("GetMovieLogo() error = %v, want %v", err, ErrAPIKeyMissing)
	}
}

func TestPickLogo(t *testing.T) {
	logos := []logoEntry{
		{URL: "ja.png", Lang: "ja"},
		{URL: "en.png", Lang: "en"},
		{URL: "de.png", Lang: "de"},
	}

	tests := []struct {
		name     string
		language string
		original string
		want     string
	}{
		{"requested language wins", "de", "ja", "de.png"},
		{"original language second", "fr", "ja", "ja.png"},
		{"english third", "fr", "ru", "en.png"},
		{"region subtag stripped", "de-AT", "en", "de.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickLogo(logos, tt.language, tt.original)
			if err != nil {
				t.Fatalf("pickLogo() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("pickLogo() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("first entry when nothing matches", func(t *testing.T) {
		noEnglish := []logoEntry{{URL: "ja.png", Lang: "ja"}, {URL: "de.png", Lang: "de"}}
		got, err := pickLogo(noEnglish, "fr", "ru")
		if err != nil {
			t.Fatalf("pickLogo() error = %v", err)
		}
		if got != "ja.png" {
			t.Errorf("pickLogo() = %q, want %q", got, "ja.png")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if _, err := pickLogo(nil, "en", "en"); !errors.Is(err, ErrNoLogo) {
			t.Errorf("pickLogo(nil) error = %v, want %v", err, ErrNoLogo)
		}
	})
}
