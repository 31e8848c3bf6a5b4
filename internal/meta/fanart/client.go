// Package fanart fetches title logo art from fanart.tv.
package fanart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aiometa/aiometa/internal/config"
)

var (
	ErrAPIKeyMissing = errors.New("fanart.tv API key is not configured")
	ErrNoLogo        = errors.New("no logo art available")
	ErrAPIError      = errors.New("fanart.tv API error")
)

// Client is a fanart.tv API client.
type Client struct {
	httpClient *http.Client
	config     config.FanartConfig
	logger     zerolog.Logger
}

// NewClient creates a new fanart.tv client.
func NewClient(cfg config.FanartConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		config: cfg,
		logger: logger.With().Str("component", "fanart").Logger(),
	}
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.config.APIKey != ""
}

// GetMovieLogo fetches the best movie logo URL for a TMDB id, preferring the
// requested language, then the title's original language, then English.
func (c *Client) GetMovieLogo(ctx context.Context, tmdbID int, language, originalLanguage string) (string, error) {
	var response movieResponse
	endpoint := fmt.Sprintf("%s/movies/%d", c.config.BaseURL, tmdbID)
	if err := c.doRequest(ctx, endpoint, &response); err != nil {
		return "", err
	}

	logos := append(response.HDMovieLogo, response.MovieLogo...)
	return pickLogo(logos, language, originalLanguage)
}

// GetSeriesLogo fetches the best series logo URL for a TVDB id, with the same
// language preference as GetMovieLogo.
func (c *Client) GetSeriesLogo(ctx context.Context, tvdbID int, language, originalLanguage string) (string, error) {
	var response tvResponse
	endpoint := fmt.Sprintf("%s/tv/%d", c.config.BaseURL, tvdbID)
	if err := c.doRequest(ctx, endpoint, &response); err != nil {
		return "", err
	}

	logos := append(response.HDTVLogo, response.ClearLogo...)
	return pickLogo(logos, language, originalLanguage)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	if !c.IsConfigured() {
		return ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("api_key", c.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", endpoint, params.Encode()), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNoLogo
		}
		return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// pickLogo selects the first logo matching the language preference chain:
// requested base language, original language, English, then any.
func pickLogo(logos []logoEntry, language, originalLanguage string) (string, error) {
	if len(logos) == 0 {
		return "", ErrNoLogo
	}

	base := language
	if i := strings.IndexByte(base, '-'); i >= 0 {
		base = base[:i]
	}

	for _, lang := range []string{base, originalLanguage, "en"} {
		if lang == "" {
			continue
		}
		for _, logo := range logos {
			if logo.Lang == lang {
				return logo.URL, nil
			}
		}
	}

	return logos[0].URL, nil
}
